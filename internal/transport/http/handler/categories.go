package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-shop-api/internal/application/category"
	"github.com/go-shop-api/internal/domain"
	"github.com/go-shop-api/internal/pkg/validate"
)

// CategoryHandler handles catalog tree endpoints.
type CategoryHandler struct {
	svc category.Service
}

func NewCategoryHandler(svc category.Service) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// parseDepth reads the ?depth= query parameter. Depth 0 means no children,
// negative values are rejected, absence defaults to one level.
func parseDepth(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("depth")
	if raw == "" {
		return 1, true
	}
	depth, err := strconv.Atoi(raw)
	if err != nil || depth < 0 {
		return 0, false
	}
	return depth, true
}

func (h *CategoryHandler) ListRoots(w http.ResponseWriter, r *http.Request) {
	depth, ok := parseDepth(r)
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "depth must be a non-negative integer")
		return
	}
	roots, err := h.svc.GetRootCategories(r.Context(), depth)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, roots)
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	depth, ok := parseDepth(r)
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "depth must be a non-negative integer")
		return
	}
	c, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "id"), depth)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	created, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete removes a category and promotes its direct children to roots.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "category deleted"})
}
