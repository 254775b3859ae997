package main

import (
	"context"
	"flag"
	"time"

	"go-estate-crm/internal/common/models"
	"go-estate-crm/internal/config"
	"go-estate-crm/internal/logger"
	"go-estate-crm/internal/storage"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

var reset = flag.Bool("reset", false, "also clear the stored session and language")

// Seed overwrites every collection with the default datasets.
func Seed(ctx context.Context, store *storage.Store, clearSession bool) error {
	writes := []func() error{
		func() error { return storage.Save(ctx, store, models.CollectionAreas, models.DefaultAreas()) },
		func() error { return storage.Save(ctx, store, models.CollectionProjects, models.DefaultProjects()) },
		func() error { return storage.Save(ctx, store, models.CollectionUnits, models.DefaultUnits()) },
		func() error { return storage.Save(ctx, store, models.CollectionLeads, models.DefaultLeads()) },
		func() error { return storage.Save(ctx, store, models.CollectionLeadSources, models.DefaultLeadSources()) },
		func() error { return storage.Save(ctx, store, models.CollectionUnitTypes, models.DefaultUnitTypes()) },
		func() error { return storage.Save(ctx, store, models.CollectionSalesReps, models.DefaultSalesReps()) },
	}
	if clearSession {
		writes = append(writes,
			func() error { return store.Remove(ctx, models.KeyCurrentUser) },
			func() error { return store.Remove(ctx, models.KeyLanguage) },
		)
	}
	for _, write := range writes {
		if err := write(); err != nil {
			return err
		}
	}
	return nil
}

func run(lc fx.Lifecycle, store *storage.Store, cfg *config.Config, logger *zap.Logger, shutdowner fx.Shutdowner) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				defer func() {
					if err := shutdowner.Shutdown(); err != nil {
						logger.Error("Failed to shutdown", zap.Error(err))
					}
				}()

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				logger.Info("Seeding store", zap.String("driver", cfg.StoreDriver), zap.Bool("reset", *reset))
				if err := Seed(ctx, store, *reset); err != nil {
					logger.Error("Seeding failed", zap.Error(err))
					return
				}
				logger.Info("Seeding complete")
			}()
			return nil
		},
	})
}

func main() {
	flag.Parse()

	fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			storage.NewBackend,
			storage.NewStoreFromConfig,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(run),
	).Run()
}
