package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lifelink/lifelink-api/internal/core/ports"
)

// HeaderColorSchemeHint is the client hint carrying the OS colour preference.
const HeaderColorSchemeHint = "Sec-CH-Prefers-Color-Scheme"

// ThemeHandler reads and writes the stored colour scheme.
type ThemeHandler struct {
	themes ports.ThemeService
}

func NewThemeHandler(themes ports.ThemeService) *ThemeHandler {
	return &ThemeHandler{themes: themes}
}

// Get handles GET /preferences/theme.
//
// @Summary      Current theme
// @Tags         preferences
// @Produce      json
// @Param        Sec-CH-Prefers-Color-Scheme  header    string  false  "OS colour preference"
// @Success      200                          {object}  themeResponse
// @Router       /preferences/theme [get]
func (h *ThemeHandler) Get(c echo.Context) error {
	hint := strings.Trim(c.Request().Header.Get(HeaderColorSchemeHint), `" `)
	return c.JSON(http.StatusOK, themeResponse{Theme: h.themes.Get(c.Request().Context(), hint)})
}

// Put handles PUT /preferences/theme.
//
// @Summary      Store the theme
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        body  body      themeRequest  true  "light or dark"
// @Success      200   {object}  themeResponse
// @Failure      422   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /preferences/theme [put]
func (h *ThemeHandler) Put(c echo.Context) error {
	var req themeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	theme, err := h.themes.Set(c.Request().Context(), req.Theme)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, themeResponse{Theme: theme})
}
