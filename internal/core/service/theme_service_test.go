package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lifelink/lifelink-api/internal/core/domain"
)

func TestThemeService_Get_Precedence(t *testing.T) {
	ctx := context.Background()
	slot := newStubSlot()
	svc := NewThemeService(slot, "", domain.ThemeLight, testLog)

	if got := svc.Get(ctx, ""); got != domain.ThemeLight {
		t.Fatalf("expected configured default, got %s", got)
	}
	if got := svc.Get(ctx, "dark"); got != domain.ThemeDark {
		t.Fatalf("expected hint to win over default, got %s", got)
	}

	slot.data[DefaultThemeKey] = []byte("light")
	if got := svc.Get(ctx, "dark"); got != domain.ThemeLight {
		t.Fatalf("expected stored value to win over hint, got %s", got)
	}

	slot.data[DefaultThemeKey] = []byte("purple")
	if got := svc.Get(ctx, "dark"); got != domain.ThemeDark {
		t.Fatalf("expected unknown stored value to be ignored, got %s", got)
	}
}

func TestThemeService_Get_ReadErrorFallsBack(t *testing.T) {
	slot := newStubSlot()
	slot.getErr = errors.New("unavailable")
	svc := NewThemeService(slot, "", "bogus", testLog)

	if got := svc.Get(context.Background(), "no-preference"); got != domain.ThemeLight {
		t.Fatalf("expected light, got %s", got)
	}
}

func TestThemeService_Set(t *testing.T) {
	ctx := context.Background()
	slot := newStubSlot()
	svc := NewThemeService(slot, "", domain.ThemeLight, testLog)

	got, err := svc.Set(ctx, "dark")
	if err != nil || got != domain.ThemeDark {
		t.Fatalf("Set(dark) = %s, %v", got, err)
	}
	if string(slot.raw(DefaultThemeKey)) != "dark" {
		t.Fatalf("theme not persisted: %q", slot.raw(DefaultThemeKey))
	}

	if _, err := svc.Set(ctx, "sepia"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	slot.setErr = errors.New("quota exceeded")
	if _, err := svc.Set(ctx, "light"); !errors.Is(err, domain.ErrPersistenceWrite) {
		t.Fatalf("expected ErrPersistenceWrite, got %v", err)
	}
}
