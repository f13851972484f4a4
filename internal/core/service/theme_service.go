package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lifelink/lifelink-api/internal/core/domain"
	"github.com/lifelink/lifelink-api/internal/core/ports"
)

// DefaultThemeKey is the slot the theme preference lives in.
const DefaultThemeKey = "lifelink_theme"

// ThemeService persists the colour-scheme preference.
type ThemeService struct {
	slot     ports.Slot
	key      string
	fallback domain.Theme
	log      zerolog.Logger
}

func NewThemeService(slot ports.Slot, key string, fallback domain.Theme, log zerolog.Logger) *ThemeService {
	if key == "" {
		key = DefaultThemeKey
	}
	if _, ok := domain.ParseTheme(string(fallback)); !ok {
		fallback = domain.ThemeLight
	}
	return &ThemeService{slot: slot, key: key, fallback: fallback, log: log}
}

// Get prefers the stored value, then the environment hint, then the
// configured default.
func (s *ThemeService) Get(ctx context.Context, hint string) domain.Theme {
	raw, err := s.slot.Get(ctx, s.key)
	switch {
	case err == nil:
		if t, ok := domain.ParseTheme(string(raw)); ok {
			return t
		}
		s.log.Warn().Str("slot", s.key).Str("value", string(raw)).Msg("ignoring unknown stored theme")
	case !errors.Is(err, domain.ErrSlotEmpty):
		s.log.Warn().Err(err).Str("slot", s.key).Msg("failed to read theme")
	}

	if t, ok := domain.ParseTheme(hint); ok {
		return t
	}
	return s.fallback
}

// Set stores theme, which must be "dark" or "light".
func (s *ThemeService) Set(ctx context.Context, theme string) (domain.Theme, error) {
	t, ok := domain.ParseTheme(theme)
	if !ok {
		return "", fmt.Errorf("%w: theme must be dark or light", domain.ErrInvalidInput)
	}
	if err := s.slot.Set(ctx, s.key, []byte(t)); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrPersistenceWrite, err)
	}
	return t, nil
}
