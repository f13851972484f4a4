package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Context keys set by Auth.
const (
	KeySessionID = "session_id"
	KeyAccountID = "account_id"
	KeyRole      = "role"
)

// SessionResolver reports whether a token's session is still live at the
// generation the token was minted for.
type SessionResolver interface {
	Resolve(sessionID string, generation uint64) bool
}

// Auth validates the JWT, checks its session is still current, and injects
// the claims into context.
func Auth(jwtSecret string, sessions SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sid, _ := claims["sid"].(string)
			gen, ok := claims["gen"].(float64)
			if sid == "" || !ok || gen < 0 {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if sessions != nil && !sessions.Resolve(sid, uint64(gen)) {
				return echo.NewHTTPError(http.StatusUnauthorized, "session has ended, please sign in again")
			}

			c.Set(KeySessionID, sid)
			c.Set(KeyAccountID, claims["sub"])
			c.Set(KeyRole, claims["role"])

			return next(c)
		}
	}
}
