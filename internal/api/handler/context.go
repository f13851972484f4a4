package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lifelink/lifelink-api/internal/api/middleware"
	"github.com/lifelink/lifelink-api/internal/core/ports"
)

// ctxSession resolves the session the Auth middleware authenticated. A token
// whose session has since been discarded is rejected with 401.
func ctxSession(c echo.Context, sessions ports.SessionLookup) (ports.Session, error) {
	sid, _ := c.Get(middleware.KeySessionID).(string)
	if sid == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	s, ok := sessions.Session(sid)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "session has ended, please sign in again")
	}
	return s, nil
}

// bindAndValidate decodes the body into req and runs the registered validator.
// normalizer is implemented by requests that clean up their fields before
// validation.
type normalizer interface {
	normalize()
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if n, ok := req.(normalizer); ok {
		n.normalize()
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}
