// @title                       LifeLink API
// @version                     1.0
// @description                 Blood-donation accounts, role-based views and the LifeLink assistant.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	_ "github.com/lifelink/lifelink-api/docs"
	"github.com/lifelink/lifelink-api/internal/api"
	"github.com/lifelink/lifelink-api/internal/core/domain"
	"github.com/lifelink/lifelink-api/internal/core/ports"
	"github.com/lifelink/lifelink-api/internal/core/service"
	"github.com/lifelink/lifelink-api/internal/infrastructure/chat"
	"github.com/lifelink/lifelink-api/internal/infrastructure/config"
	"github.com/lifelink/lifelink-api/internal/infrastructure/db/memory"
	mongoslot "github.com/lifelink/lifelink-api/internal/infrastructure/db/mongo"
	redisslot "github.com/lifelink/lifelink-api/internal/infrastructure/db/redis"
	"github.com/lifelink/lifelink-api/internal/infrastructure/queue"
	"github.com/lifelink/lifelink-api/pkg/logger"
)

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "lifelink-api",
	})
	log.Info().Stringer("config", cfg).Msg("configuration loaded")

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	slot, closeSlot, err := openSlot(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store.Backend, err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := closeSlot(closeCtx); err != nil {
			log.Error().Err(err).Msg("close store")
		}
	}()

	readiness := map[string]ports.Pinger{}
	if p, ok := slot.(ports.Pinger); ok && cfg.Store.Backend != "memory" {
		readiness[cfg.Store.Backend] = p
	}

	if cfg.UsingDevSecret() {
		log.Warn().Msg("JWT_SECRET not set, using the development secret")
	}
	if cfg.Auth.MasterPassword != "" {
		log.Warn().Msg("shared master password is enabled; set AUTH_MASTER_PASSWORD=off to disable")
	}

	store := service.OpenUserStore(ctx, slot, cfg.Store.UsersKey, logger.Component("user_store"))

	chatClient := newChatClient(cfg, log)
	dispatcher := queue.NewDispatcher(cfg.Chat.Workers, chatClient, cfg.Chat.Timeout, logger.Component("chat_dispatcher"))
	// Workers outlive ctx so requests drained by e.Shutdown still get replies.
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	dispatcher.Start(workerCtx)
	asker := service.NewChatService(dispatcher, cfg.Chat.Timeout, logger.Component("chat"))

	router := service.NewViewRouter()
	sessions := service.NewSessionRegistry(store, router, chatClient, asker, service.SessionOptions{
		LoginDelay:     cfg.Auth.LoginDelay,
		DemoDelay:      cfg.Auth.DemoDelay,
		MasterPassword: cfg.Auth.MasterPassword,
	}, logger.Component("session"))
	sessions.StartJanitor(ctx, time.Minute, cfg.TokenTTL)

	theme, _ := domain.ParseTheme(cfg.Theme.Default)

	e := api.NewRouter(api.Dependencies{
		Auth:         service.NewAuthService(sessions, cfg.JWTSecret, cfg.TokenTTL),
		Sessions:     sessions,
		Directory:    service.NewDirectoryService(store, domain.Centers(), domain.Doctors()),
		Themes:       service.NewThemeService(slot, cfg.Store.ThemeKey, theme, logger.Component("theme")),
		Readiness:    readiness,
		JWTSecret:    cfg.JWTSecret,
		PasswordHint: cfg.Auth.MasterPassword,
		Logger:       logger.Component("http"),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func openSlot(ctx context.Context, cfg *config.Config) (ports.Slot, func(context.Context) error, error) {
	switch cfg.Store.Backend {
	case "redis":
		return redisslot.Open(ctx, redisslot.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	case "mongo":
		return mongoslot.Open(ctx, mongoslot.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
	default:
		return memory.NewSlot(), func(context.Context) error { return nil }, nil
	}
}

func newChatClient(cfg *config.Config, log zerolog.Logger) ports.ChatClient {
	if cfg.Chat.Provider == "gemini" && cfg.Chat.APIKey != "" {
		return chat.NewGeminiClient(chat.GeminiConfig{
			BaseURL: cfg.Chat.BaseURL,
			APIKey:  cfg.Chat.APIKey,
			Model:   cfg.Chat.Model,
			Timeout: cfg.Chat.Timeout,
		}, logger.Component("gemini"))
	}
	if cfg.Chat.Provider == "gemini" {
		log.Warn().Msg("GEMINI_API_KEY not set, assistant runs in maintenance mode")
	}
	return chat.NewMaintenanceClient(logger.Component("assistant"))
}
