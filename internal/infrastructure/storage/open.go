package storage

import (
	"context"
	"fmt"

	"clipshare/internal/app/server/config"
	"clipshare/internal/infrastructure/storage/memory"
	"clipshare/internal/infrastructure/storage/mongo"
	"clipshare/internal/infrastructure/storage/postgres"
	"clipshare/internal/infrastructure/storage/sqlite"

	"golang.org/x/exp/slog"
)

// Open connects the backend selected by cfg.Driver.
func Open(ctx context.Context, cfg config.DB, log *slog.Logger) (Store, error) {
	log.Info("opening storage", "driver", cfg.Driver)

	var (
		store Store
		err   error
	)
	switch cfg.Driver {
	case DriverMemory:
		store = memory.New()
	case DriverPostgres:
		store, err = checked(postgres.New(ctx, cfg, log))
	case DriverMongo:
		store, err = checked(mongo.New(ctx, cfg.MongoURI, cfg.MongoDatabase, log))
	case DriverSQLite:
		store, err = checked(sqlite.New(cfg.SQLitePath, log))
	default:
		err = fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", cfg.Driver, err)
	}
	return store, nil
}

// checked keeps a typed nil pointer out of the Store interface.
func checked[S Store](s S, err error) (Store, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}
