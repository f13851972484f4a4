package api

import (
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/lifelink/lifelink-api/internal/api/handler"
	"github.com/lifelink/lifelink-api/internal/api/middleware"
	"github.com/lifelink/lifelink-api/internal/core/domain"
	"github.com/lifelink/lifelink-api/internal/core/ports"
	infrahttp "github.com/lifelink/lifelink-api/internal/infrastructure/http"
)

// Sessions is what the router needs from the session registry.
type Sessions interface {
	ports.SessionLookup
	middleware.SessionResolver
}

// Dependencies are the services the HTTP surface is built on.
type Dependencies struct {
	Auth      ports.AuthService
	Sessions  Sessions
	Directory ports.DirectoryService
	Themes    ports.ThemeService

	// Readiness lists the backends probed by /health/ready.
	Readiness map[string]ports.Pinger
	JWTSecret string
	// PasswordHint is shown on failed logins when the shared override is on.
	PasswordHint string
	Logger       zerolog.Logger
	// Registerer receives the HTTP metrics. Defaults to the global registry.
	Registerer prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger, ErrorOptions{PasswordHint: deps.PasswordHint})

	reg := deps.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "lifelink",
		Registerer: reg,
		Skipper:    skipOps,
	}))

	// --- Health, metrics, docs (no auth required) ---
	infrahttp.RegisterOps(e, deps.Readiness)

	authMW := middleware.Auth(deps.JWTSecret, deps.Sessions)

	authHandler := handler.NewAuthHandler(deps.Auth)
	sessionHandler := handler.NewSessionHandler(deps.Sessions, deps.Directory)
	directoryHandler := handler.NewDirectoryHandler(deps.Directory)
	chatHandler := handler.NewChatHandler(deps.Sessions)
	themeHandler := handler.NewThemeHandler(deps.Themes)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/demo", authHandler.Demo)
	e.POST("/auth/logout", authHandler.Logout, authMW)

	// --- Preferences (device-wide, no auth) ---
	e.GET("/preferences/theme", themeHandler.Get)
	e.PUT("/preferences/theme", themeHandler.Put)

	// --- Session & views ---
	e.GET("/session", sessionHandler.Get, authMW)
	e.POST("/session/navigate", sessionHandler.Navigate, authMW)
	e.GET("/views/current", sessionHandler.CurrentView, authMW)

	// --- Directory ---
	dir := e.Group("/directory", authMW)
	dir.GET("/centers", directoryHandler.Centers)
	dir.GET("/doctors", directoryHandler.Doctors)
	dir.POST("/doctors/:id/book", directoryHandler.Book)
	dir.GET("/specialties", directoryHandler.Specialties)
	dir.GET("/donors", directoryHandler.Donors, middleware.RBAC(string(domain.RoleHospital), string(domain.RoleAdmin)))

	e.GET("/admin/overview", directoryHandler.Overview, authMW, middleware.RBAC(string(domain.RoleAdmin)))

	// --- Assistant ---
	chat := e.Group("/chat", authMW)
	chat.GET("/messages", chatHandler.List)
	chat.POST("/messages", chatHandler.Send)

	return e
}

func skipOps(c echo.Context) bool {
	p := c.Path()
	return p == "/metrics" || strings.HasPrefix(p, "/health") || strings.HasPrefix(p, "/swagger")
}

// requestLogger feeds echo's request log through zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		Skipper:      skipOps,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			switch {
			case v.Status >= 500:
				evt = log.Error().Err(v.Error)
			case v.Error != nil:
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
