package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/emo-circle/backend/config"
	"github.com/emo-circle/backend/internal/pg"
	"github.com/emo-circle/backend/internal/repository/postgres"
	"github.com/emo-circle/backend/internal/security"
	"github.com/emo-circle/backend/internal/service"
	httpx "github.com/emo-circle/backend/internal/transport/http"
	"github.com/emo-circle/backend/pkg/logger"
)

func main() {
	// --- config ---
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger.Init(logger.Config{
		Env:       logger.Env(cfg.Logging.Env),
		Service:   cfg.Logging.Service,
		Version:   cfg.Logging.Version,
		Backend:   logger.Backend(cfg.Logging.Backend),
		AddSource: cfg.Logging.AddSource,
		Debug:     cfg.Logging.Debug,
	})
	slog.Info("starting emo-backend",
		"env", cfg.Logging.Env, "version", cfg.Logging.Version)

	// --- postgres ---
	ctx := context.Background()
	if err := pg.Migrate(cfg.Postgres.DSN); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	pool, err := pg.NewPool(ctx, pg.Config{
		DSN:             cfg.Postgres.DSN,
		ApplicationName: cfg.Logging.Service,
	})
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	// --- repos ---
	userRepo := postgres.NewUserRepo(pool)
	sessionRepo := postgres.NewSessionRepo(pool)
	participantRepo := postgres.NewParticipantRepo(pool)
	messageRepo := postgres.NewMessageRepo(pool)
	replyRepo := postgres.NewReplyRepo(pool)
	emotionRepo := postgres.NewEmotionRepo(pool)

	// --- services ---
	authSvc := service.NewAuthService(userRepo, security.BcryptConfig{}, nil)
	sessionSvc := service.NewSessionService(sessionRepo, participantRepo, messageRepo, replyRepo, emotionRepo, nil)
	messageSvc := service.NewMessageService(messageRepo, replyRepo, nil)

	// --- HTTP ---
	handler := httpx.NewHandler(authSvc, sessionSvc, messageSvc)
	router := httpx.NewRouter(handler)
	httpSrv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http listen", "addr", cfg.HTTP.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// --- graceful shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal", "sig", sig)
	case err := <-errCh:
		slog.Error("server error", "err", err)
	}

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = httpSrv.Shutdown(ctxShutdown)
	slog.Info("stopped")
}
