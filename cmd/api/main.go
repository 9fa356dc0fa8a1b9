package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/carelink/call-center-api/internal/api"
	"github.com/carelink/call-center-api/internal/core/domain"
	"github.com/carelink/call-center-api/internal/infrastructure/db/redis"
	"github.com/carelink/call-center-api/internal/infrastructure/store"
	"github.com/carelink/call-center-api/internal/pkg/config"
	"github.com/carelink/call-center-api/internal/seed"
	"github.com/carelink/call-center-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	kv := redis.NewKV(rdb)
	users := store.NewCollection[domain.User](kv, "users", domain.ErrUserNotFound)
	if err := seed.EnsureAdmin(ctx, users, cfg.InitialAdmin, log); err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap admin account")
	}

	e := api.NewRouter(rdb, cfg.JWTSecret, cfg.TokenTTL, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
