package config

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "8080" || cfg.Store.Backend != "redis" || cfg.Store.UsersKey != "lifelink_users" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Auth.LoginDelay != 800*time.Millisecond || cfg.Auth.DemoDelay != 600*time.Millisecond {
		t.Fatalf("unexpected delays: %+v", cfg.Auth)
	}
	if cfg.Auth.MasterPassword != "1234" {
		t.Fatalf("expected master password default, got %q", cfg.Auth.MasterPassword)
	}
	if cfg.TokenTTL != 24*time.Hour || cfg.Chat.Workers != 4 || cfg.Theme.Default != "light" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.UsingDevSecret() {
		t.Fatalf("expected development secret outside production")
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":             "9090",
		"JWT_SECRET":       "s3cret",
		"STORE_BACKEND":    "memory",
		"AUTH_LOGIN_DELAY": "0s",
		"CHAT_PROVIDER":    "gemini",
		"GEMINI_API_KEY":   "key",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9090" || cfg.Store.Backend != "memory" || cfg.Auth.LoginDelay != 0 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.UsingDevSecret() {
		t.Fatalf("explicit secret should not be reported as dev secret")
	}
	if strings.Contains(cfg.String(), "s3cret") {
		t.Fatalf("String leaked the JWT secret")
	}
}

func TestLoad_MasterPasswordOff(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"AUTH_MASTER_PASSWORD": "OFF",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Auth.MasterPassword != "" {
		t.Fatalf("expected override disabled, got %q", cfg.Auth.MasterPassword)
	}
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{"ENV": "production"}))
	if err == nil {
		t.Fatalf("expected error without JWT_SECRET in production")
	}
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{"STORE_BACKEND": "sqlite"}))
	if err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
