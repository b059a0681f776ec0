package v1

import (
	"errors"
	"net/http"

	"github.com/kolosave/backend/internal/httputil"
	"github.com/kolosave/backend/internal/models"
	"github.com/kolosave/backend/internal/paymentpoint"
)

type httpError struct {
	Error string `json:"error" example:"the body of your request contains invalid or un-parseable data. Please check and try again"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError

	case errors.Is(err, models.ErrResourceNotFound),
		errors.Is(err, models.ErrUnknownPayer):
		return http.StatusNotFound

	case errors.Is(err, models.ErrEmailTaken):
		return http.StatusConflict

	case errors.Is(err, httputil.ErrNoSession),
		errors.Is(err, httputil.ErrNotAdmin),
		errors.Is(err, paymentpoint.ErrSignatureMismatch):
		return http.StatusUnauthorized

	case errors.Is(err, paymentpoint.ErrProvisioningFailed):
		return http.StatusBadGateway
	}

	return http.StatusBadRequest
}
