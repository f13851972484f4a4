package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lifelink/lifelink-api/internal/core/ports"
)

// ChatHandler relays the caller's conversation with the assistant.
type ChatHandler struct {
	sessions ports.SessionLookup
}

func NewChatHandler(sessions ports.SessionLookup) *ChatHandler {
	return &ChatHandler{sessions: sessions}
}

// List handles GET /chat/messages.
//
// @Summary      Chat transcript
// @Tags         chat
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  transcriptResponse
// @Failure      401  {object}  map[string]string
// @Router       /chat/messages [get]
func (h *ChatHandler) List(c echo.Context) error {
	s, err := ctxSession(c, h.sessions)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transcriptResponse{Messages: s.Transcript()})
}

// Send handles POST /chat/messages. The reply is always text; a failed
// assistant call yields the fallback message rather than an error.
//
// @Summary      Ask the assistant
// @Tags         chat
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      chatRequest  true  "Message"
// @Success      200   {object}  transcriptResponse
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /chat/messages [post]
func (h *ChatHandler) Send(c echo.Context) error {
	s, err := ctxSession(c, h.sessions)
	if err != nil {
		return err
	}

	var req chatRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	messages, err := s.SendChat(c.Request().Context(), req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transcriptResponse{Messages: messages})
}
