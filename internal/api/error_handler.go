package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lifelink/lifelink-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// ErrorOptions tunes user-facing messages.
type ErrorOptions struct {
	// PasswordHint is appended to the invalid-credentials message when set.
	PasswordHint string
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger, opts ErrorOptions) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, opts, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, opts ErrorOptions, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var rle *domain.RoleLookupError
	switch {
	case errors.As(err, &rle):
		return http.StatusNotFound, fmt.Sprintf("No %s account found.", strings.ToLower(string(rle.Role)))
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, "Account not found. Please create an account first."
	case errors.Is(err, domain.ErrInvalidCredentials):
		if opts.PasswordHint != "" {
			return http.StatusUnauthorized, fmt.Sprintf("Incorrect password. The default is %s.", opts.PasswordHint)
		}
		return http.StatusUnauthorized, "Incorrect password."
	case errors.Is(err, domain.ErrEmailAlreadyRegistered):
		return http.StatusConflict, "This email is already registered. Please sign in."
	case errors.Is(err, domain.ErrDoctorNotFound):
		return http.StatusNotFound, "Doctor not found."
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized, "not signed in"
	case errors.Is(err, domain.ErrStaleSession):
		return http.StatusConflict, "session changed while waiting for a reply"
	case errors.Is(err, domain.ErrPersistenceWrite):
		log.Warn().Err(err).Str("path", c.Path()).Msg("persistence write failed")
		return http.StatusServiceUnavailable, "could not save, please try again"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "request cancelled"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
