package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"

	"github.com/fullstack-labs/user-service/internal/api"
	"github.com/fullstack-labs/user-service/internal/core/auth"
	"github.com/fullstack-labs/user-service/internal/core/domain"
	"github.com/fullstack-labs/user-service/internal/core/service"
	"github.com/fullstack-labs/user-service/internal/infrastructure/config"
	"github.com/fullstack-labs/user-service/internal/infrastructure/db/postgres"
	"github.com/fullstack-labs/user-service/internal/infrastructure/db/redis"
	"github.com/fullstack-labs/user-service/internal/infrastructure/queue"
	"github.com/fullstack-labs/user-service/pkg/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("configuration error")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// Schema first: serving requests against a half-initialized database
	// is worse than refusing to start.
	if err := postgres.RunMigrations(cfg.Postgres.URL); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	initCtx, initCancel := context.WithTimeout(ctx, 15*time.Second)
	defer initCancel()

	db, err := postgres.Connect(initCtx, postgres.Config{
		URL:             cfg.Postgres.URL,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer db.Close()

	rdb, err := redis.Connect(initCtx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	if err := seedAdmin(initCtx, db, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	// Audit pipeline: lifecycle events flow through a sharded dispatcher
	// into Postgres, deduplicated via Redis.
	auditService := service.NewAuditService(
		postgres.NewAuditRepository(db),
		redis.NewDedupChecker(rdb),
		log,
	)
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, auditService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.RouterDeps{
		Users:   postgres.NewUserRepository(db),
		DB:      db,
		Redis:   rdb,
		Tokens:  auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL),
		Audit:   dispatcher,
		Log:     log,
		Metrics: true,
	})
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("user service listening")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}
}

// seedAdmin guarantees at least one admin account exists so the admin CRUD
// is reachable on a fresh database.
func seedAdmin(ctx context.Context, db *sql.DB, cfg *config.Config, log zerolog.Logger) error {
	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	created, err := postgres.EnsureAdmin(ctx, db, cfg.Admin.Name, domain.NormalizeEmail(cfg.Admin.Email), hash)
	if err != nil {
		return err
	}
	if created {
		log.Info().Str("email", cfg.Admin.Email).Msg("bootstrap admin created")
	}
	return nil
}
