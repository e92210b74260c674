package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pharmaplus/pharmacy-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"success":false,"error":"<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, domain.ErrInvalidCredentials.Error()
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, domain.ErrUserExists.Error()
	case errors.Is(err, domain.ErrProductExists):
		return http.StatusConflict, domain.ErrProductExists.Error()
	case errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest, domain.ErrMissingFields.Error()
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, domain.ErrUserNotFound.Error()
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, domain.ErrProductNotFound.Error()
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, domain.ErrOrderNotFound.Error()
	case errors.Is(err, domain.ErrPrescriptionNotFound):
		return http.StatusNotFound, domain.ErrPrescriptionNotFound.Error()
	case errors.Is(err, domain.ErrAddressNotFound):
		return http.StatusNotFound, domain.ErrAddressNotFound.Error()
	case errors.Is(err, domain.ErrPaymentMethodNotFound):
		return http.StatusNotFound, domain.ErrPaymentMethodNotFound.Error()
	case errors.Is(err, domain.ErrInventoryItemNotFound):
		return http.StatusNotFound, domain.ErrInventoryItemNotFound.Error()
	case errors.Is(err, domain.ErrMissingJWTSecret):
		// Deployment misconfiguration, surfaced distinctly from client misuse
		// so operators can pick it out of the logs.
		log.Error().Str("path", c.Path()).Msg("jwt secret is not configured")
		return http.StatusInternalServerError, "server configuration error"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
