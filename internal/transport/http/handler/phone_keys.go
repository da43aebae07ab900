package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-shop-api/internal/application/phonekey"
	"github.com/go-shop-api/internal/domain"
	"github.com/go-shop-api/internal/pkg/validate"
)

// PhoneKeyHandler handles phone verification key endpoints.
type PhoneKeyHandler struct {
	svc phonekey.Service
}

func NewPhoneKeyHandler(svc phonekey.Service) *PhoneKeyHandler {
	return &PhoneKeyHandler{svc: svc}
}

func (h *PhoneKeyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreatePhoneKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	pk, err := h.svc.Create(r.Context(), req.Phone)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, pk)
}

func (h *PhoneKeyHandler) Get(w http.ResponseWriter, r *http.Request) {
	pk, err := h.svc.GetByKey(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pk)
}

func (h *PhoneKeyHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req domain.VerifyPhoneKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	pk, err := h.svc.Verify(r.Context(), req.Key, req.Code)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pk)
}
