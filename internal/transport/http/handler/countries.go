package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-shop-api/internal/application/catalog"
)

// CountryHandler exposes the read-only country reference data.
type CountryHandler struct {
	svc catalog.CountryService
}

func NewCountryHandler(svc catalog.CountryService) *CountryHandler {
	return &CountryHandler{svc: svc}
}

func (h *CountryHandler) List(w http.ResponseWriter, r *http.Request) {
	countries, err := h.svc.List(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, countries)
}

func (h *CountryHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}
