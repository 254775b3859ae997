package storage

import (
	"context"
	"fmt"
	"time"

	"go-estate-crm/internal/config"
	"go-estate-crm/internal/database"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NewBackend connects the backend named by cfg.StoreDriver. Only the selected
// driver opens a connection.
func NewBackend(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (Backend, error) {
	log.Info("Opening persistent store", zap.String("driver", cfg.StoreDriver))

	switch cfg.StoreDriver {
	case config.DriverMemory:
		return NewMemoryBackend(), nil
	case config.DriverFile:
		backend, err := NewFileBackend(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		return backend, nil
	case config.DriverMongo:
		mongodb, err := database.NewDatabase(lc, cfg, log)
		if err != nil {
			return nil, err
		}
		return NewMongoBackend(mongodb.DB), nil
	case config.DriverRedis:
		client, err := database.NewRedis(lc, cfg, log)
		if err != nil {
			return nil, err
		}
		return NewRedisBackend(client), nil
	case config.DriverPostgres:
		db, err := database.NewPostgres(lc, cfg, log)
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		backend, err := NewPostgresBackend(ctx, db)
		if err != nil {
			return nil, err
		}
		return backend, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// NewStoreFromConfig wraps the backend with the configured key prefix.
func NewStoreFromConfig(backend Backend, cfg *config.Config, log *zap.Logger) *Store {
	return NewStore(backend, cfg.StorePrefix, log)
}
