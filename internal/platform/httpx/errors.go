package httpx

import (
	"errors"
	"net/http"

	"github.com/lagranja/vetstore/internal/shared"
)

// RespondError maps domain errors to HTTP responses using RFC7807. Failed
// collaborator reads and writes surface as 502 so clients can retry; the
// store's own error text is never leaked.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, shared.ErrValidation):
		Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	case errors.Is(err, shared.ErrInvalidCredentials):
		Problem(w, http.StatusUnauthorized, "Invalid Credentials", err.Error())
	case errors.Is(err, shared.ErrUnauthorized):
		Problem(w, http.StatusUnauthorized, "Unauthorized", err.Error())
	case errors.Is(err, shared.ErrForbidden):
		Problem(w, http.StatusForbidden, "Forbidden", err.Error())
	case errors.Is(err, shared.ErrDataFetch), errors.Is(err, shared.ErrDataWrite):
		Problem(w, http.StatusBadGateway, "Store Unavailable", "the data store did not respond, try again")
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
