package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	goredis "github.com/redis/go-redis/v9"

	"github.com/garrettladley/notemap/internal/cache"
	"github.com/garrettladley/notemap/internal/client/notemap"
	"github.com/garrettladley/notemap/internal/client/places"
	"github.com/garrettladley/notemap/internal/config"
	"github.com/garrettladley/notemap/internal/credentials"
	"github.com/garrettladley/notemap/internal/db"
	"github.com/garrettladley/notemap/internal/paths"
	"github.com/garrettladley/notemap/internal/redis"
	"github.com/garrettladley/notemap/internal/repository"
	"github.com/garrettladley/notemap/internal/xslog"
)

// app holds everything a command needs; close releases it.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	store  credentials.Store
	repo   *repository.Repository

	closers []io.Closer
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	a := &app{cfg: cfg}

	logger, err := a.openLogger()
	if err != nil {
		return nil, err
	}
	a.logger = logger

	dbPath, err := paths.DB()
	if err != nil {
		a.close()
		return nil, err
	}

	sqlDB, err := db.Open(ctx, dbPath)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	a.closers = append(a.closers, sqlDB)

	store, err := a.credentialStore(ctx, sqlDB)
	if err != nil {
		a.close()
		return nil, err
	}
	a.store = store

	api := notemap.New(store,
		notemap.WithBaseURL(cfg.APIURL),
		notemap.WithLogger(logger),
		notemap.WithTimeout(cfg.HTTPTimeout),
	)

	placesClient := places.New(cfg.Places.APIKey,
		places.WithBaseURL(cfg.Places.URL),
		places.WithRateLimit(cfg.Places.RateLimit, cfg.Places.Burst),
		places.WithLogger(logger),
	)

	a.repo = repository.New(repository.Deps{
		API:         api,
		Places:      placesClient,
		Credentials: store,
		Cache:       cache.New(sqlDB),
	})

	return a, nil
}

// openLogger writes JSON logs to the log file so terminal output stays clean.
func (a *app) openLogger() (*slog.Logger, error) {
	logPath, err := paths.Log()
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	a.closers = append(a.closers, f)

	return xslog.NewLogger(f, a.cfg.LogLevel).With(slog.String("env", string(a.cfg.Env))), nil
}

func (a *app) credentialStore(ctx context.Context, sqlDB *sql.DB) (credentials.Store, error) {
	switch a.cfg.CredentialStore {
	case config.CredentialStoreRedis:
		client, err := redis.New(ctx, redis.Config{URL: a.cfg.RedisURL})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client)
		return credentials.NewRedisStore(client, a.cfg.RedisAccount), nil
	case config.CredentialStoreMemory:
		return credentials.NewMemoryStore(), nil
	default:
		return credentials.NewSQLiteStore(sqlDB), nil
	}
}

func (a *app) close() {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil && a.logger != nil {
		a.logger.Warn("failed to release resources", xslog.Error(err))
	}
}
