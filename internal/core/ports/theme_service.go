package ports

import (
	"context"

	"github.com/lifelink/lifelink-api/internal/core/domain"
)

type ThemeService interface {
	// Get returns the stored theme, else the client's hint, else the default.
	Get(ctx context.Context, hint string) domain.Theme
	Set(ctx context.Context, theme string) (domain.Theme, error)
}
