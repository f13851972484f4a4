package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lifelink/lifelink-api/internal/api/metrics"
	"github.com/lifelink/lifelink-api/internal/core/domain"
	"github.com/lifelink/lifelink-api/internal/core/ports"
)

// AuthService opens a client session per sign-in attempt and issues a token
// bound to that session's id and generation.
type AuthService struct {
	sessions  *SessionRegistry
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(sessions *SessionRegistry, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{sessions: sessions, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.signIn("login", func(m *SessionManager) (domain.SessionState, error) {
		return m.Login(ctx, email, password)
	})
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	return s.signIn("register", func(m *SessionManager) (domain.SessionState, error) {
		return m.Register(ctx, input)
	})
}

func (s *AuthService) DemoLogin(ctx context.Context, role domain.Role) (*ports.AuthResult, error) {
	return s.signIn("demo", func(m *SessionManager) (domain.SessionState, error) {
		return m.DemoLogin(ctx, role)
	})
}

// Logout signs the session out and forgets it.
func (s *AuthService) Logout(_ context.Context, sessionID string) error {
	m, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.ErrNotAuthenticated
	}
	m.Logout()
	s.sessions.Discard(sessionID)
	return nil
}

func (s *AuthService) signIn(op string, run func(*SessionManager) (domain.SessionState, error)) (*ports.AuthResult, error) {
	m := s.sessions.Open()

	state, err := run(m)
	if err != nil {
		s.sessions.Discard(m.ID())
		metrics.AuthAttemptsTotal.WithLabelValues(op, authResult(err)).Inc()
		return nil, err
	}

	token, err := s.generateToken(state)
	if err != nil {
		s.sessions.Discard(m.ID())
		metrics.AuthAttemptsTotal.WithLabelValues(op, "error").Inc()
		return nil, err
	}

	metrics.AuthAttemptsTotal.WithLabelValues(op, "ok").Inc()
	return &ports.AuthResult{Token: token, State: state}, nil
}

func (s *AuthService) generateToken(state domain.SessionState) (string, error) {
	claims := jwt.MapClaims{
		"sid":  state.SessionID,
		"sub":  state.Account.ID,
		"role": string(state.Account.Role),
		"gen":  state.Generation,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func authResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrEmailAlreadyRegistered):
		return "duplicate"
	case errors.Is(err, domain.ErrNoAccountForRole):
		return "no_role"
	default:
		return "error"
	}
}
