package handler

import (
	"errors"
	"net/http"

	"github.com/go-shop-api/internal/domain"
)

// httpError maps a service error onto an HTTP status by its wrapped sentinel
// and writes the JSON error envelope. Unknown errors become a 500 without the
// internal message leaking to the client.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, domain.ErrBadPhoneKey), errors.Is(err, domain.ErrBadRequest),
		errors.Is(err, domain.ErrCategoryOwnParent), errors.Is(err, domain.ErrBadParent):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrBadCredentials), errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
