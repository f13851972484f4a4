package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// devJWTSecret is only accepted outside production.
const devJWTSecret = "lifelink-dev-secret-change-me"

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Store StoreConfig
	Mongo MongoConfig
	Redis RedisConfig
	Auth  AuthConfig
	Chat  ChatConfig
	Theme ThemeConfig
}

type StoreConfig struct {
	// Backend is one of redis, mongo, memory.
	Backend  string `env:"STORE_BACKEND,    default=redis"`
	UsersKey string `env:"STORE_USERS_KEY,  default=lifelink_users"`
	ThemeKey string `env:"STORE_THEME_KEY,  default=lifelink_theme"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=lifelink"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type AuthConfig struct {
	LoginDelay time.Duration `env:"AUTH_LOGIN_DELAY, default=800ms"`
	DemoDelay  time.Duration `env:"AUTH_DEMO_DELAY,  default=600ms"`
	// MasterPassword unlocks every account. "off" disables it.
	MasterPassword string `env:"AUTH_MASTER_PASSWORD, default=1234"`
}

type ChatConfig struct {
	// Provider is gemini or stub. gemini without an API key falls back to stub.
	Provider string        `env:"CHAT_PROVIDER, default=stub"`
	APIKey   string        `env:"GEMINI_API_KEY"`
	Model    string        `env:"GEMINI_MODEL,  default=gemini-2.5-flash"`
	BaseURL  string        `env:"GEMINI_BASE_URL, default=https://generativelanguage.googleapis.com"`
	Timeout  time.Duration `env:"CHAT_TIMEOUT,  default=30s"`
	Workers  int           `env:"CHAT_WORKERS,  default=4"`
}

type ThemeConfig struct {
	Default string `env:"THEME_DEFAULT, default=light"`
}

// IsProduction reports whether ENV names a production deployment.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
// Outside production an empty JWT_SECRET falls back to a development secret.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("config: JWT_SECRET is required in production")
		}
		cfg.JWTSecret = devJWTSecret
	}

	if strings.EqualFold(cfg.Auth.MasterPassword, "off") {
		cfg.Auth.MasterPassword = ""
	}

	switch cfg.Store.Backend {
	case "redis", "mongo", "memory":
	default:
		return nil, fmt.Errorf("config: unknown STORE_BACKEND %q", cfg.Store.Backend)
	}

	return &cfg, nil
}

// UsingDevSecret reports whether the development JWT secret is in effect.
func (c *Config) UsingDevSecret() bool {
	return c.JWTSecret == devJWTSecret
}

// String returns a representation of the config with secrets masked.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Env: %s, Port: %s, Store: %s, Chat: %s, JWT: *** (masked) ***}",
		c.Env, c.Port, c.Store.Backend, c.Chat.Provider)
}
