package ports

import (
	"context"

	"github.com/lifelink/lifelink-api/internal/core/domain"
)

// RegisterInput carries the registration form.
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	BloodType string
	Location  string
}

// AuthResult is returned by every successful sign-in path.
type AuthResult struct {
	Token string
	State domain.SessionState
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	DemoLogin(ctx context.Context, role domain.Role) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
}
