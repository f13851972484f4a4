package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lifelink/lifelink-api/internal/core/domain"
	"github.com/lifelink/lifelink-api/internal/core/ports"
)

// SessionHandler exposes the caller's session state and view routing.
type SessionHandler struct {
	sessions  ports.SessionLookup
	directory ports.DirectoryService
}

func NewSessionHandler(sessions ports.SessionLookup, directory ports.DirectoryService) *SessionHandler {
	return &SessionHandler{sessions: sessions, directory: directory}
}

// Get handles GET /session.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  map[string]string
// @Router       /session [get]
func (h *SessionHandler) Get(c echo.Context) error {
	s, err := ctxSession(c, h.sessions)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(s.State()))
}

// Navigate handles POST /session/navigate. Views outside the caller's menu
// land on the role's default view instead of failing.
//
// @Summary      Switch the current view
// @Tags         session
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      navigateRequest  true  "Requested view"
// @Success      200   {object}  sessionResponse
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /session/navigate [post]
func (h *SessionHandler) Navigate(c echo.Context) error {
	s, err := ctxSession(c, h.sessions)
	if err != nil {
		return err
	}

	var req navigateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	state, err := s.Navigate(domain.ParseView(req.View))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(state))
}

// CurrentView handles GET /views/current.
//
// @Summary      Content for the current view
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  viewResponse
// @Failure      401  {object}  map[string]string
// @Router       /views/current [get]
func (h *SessionHandler) CurrentView(c echo.Context) error {
	s, err := ctxSession(c, h.sessions)
	if err != nil {
		return err
	}

	content, err := h.directory.ViewContent(s.State())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, viewResponse{View: content.View, Kind: content.Kind, Data: content.Data})
}
