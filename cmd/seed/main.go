// Command seed fills an empty record store with the development dataset:
// three hospice clients, the standard categories, one account per role, and
// two sample calls. Collections that already hold records are left alone.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/carelink/call-center-api/internal/core/domain"
	"github.com/carelink/call-center-api/internal/infrastructure/db/redis"
	"github.com/carelink/call-center-api/internal/infrastructure/store"
	"github.com/carelink/call-center-api/internal/pkg/config"
	"github.com/carelink/call-center-api/internal/seed"
	"github.com/carelink/call-center-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

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
	clients := store.NewCollection[domain.Client](kv, "clients", domain.ErrClientNotFound)
	categories := store.NewCollection[domain.Category](kv, "categories", domain.ErrCategoryNotFound)
	calls := store.NewCollection[domain.Call](kv, "calls", domain.ErrCallNotFound)

	if err := seed.EnsureAdmin(ctx, users, cfg.InitialAdmin, log); err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap admin account")
	}
	if err := seed.Defaults(ctx, users, clients, categories, calls, log); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	log.Info().Msg("seeding complete")
}
