package cli

import (
	"context"
	"fmt"

	"github.com/custodia-labs/servico/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/servico/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/servico/internal/adapters/driven/storage/postgres"
	"github.com/custodia-labs/servico/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/servico/internal/config"
	"github.com/custodia-labs/servico/internal/core/domain"
	"github.com/custodia-labs/servico/internal/core/ports/driven"
	"github.com/custodia-labs/servico/internal/core/services"
	"github.com/custodia-labs/servico/internal/logger"
)

// app holds the core services built from a config.
type app struct {
	users    *services.UserService
	services *services.ServiceRecordService
	closers  []func()
}

// Close releases the storage backend.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// newApp opens the configured storage, loads both collections and wires
// the services together.
func newApp(ctx context.Context, c *config.Config) (*app, error) {
	a := &app{}

	userStore, serviceStore, err := a.openStores(ctx, c.Storage)
	if err != nil {
		return nil, err
	}

	ids, err := services.NewIDGenerator(services.IDPolicy(c.IDs.Policy))
	if err != nil {
		a.Close()
		return nil, err
	}

	locale, err := domain.ParseLocale(c.Display.Locale)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.users, err = services.NewUserService(ctx, userStore, ids)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.services, err = services.NewServiceRecordService(ctx, serviceStore, a.users, ids)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.services.SetLabels(domain.LabelsFor(locale))

	logger.Info("Loaded %d users and %d services from %s storage", a.users.Count(), a.services.Count(), c.Storage.Driver)
	return a, nil
}

func (a *app) openStores(ctx context.Context, s config.StorageConfig) (driven.UserStore, driven.ServiceStore, error) {
	switch s.Driver {
	case "json":
		store, err := jsonfile.NewStore(s.DataDir, jsonfile.Naming(s.Naming))
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("Using JSON files %s and %s", store.UsersPath(), store.ServicesPath())
		return store.UserStore(), store.ServiceStore(), nil
	case "sqlite":
		store, err := sqlite.NewStore(s.DataDir)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, func() {
			if err := store.Close(); err != nil {
				logger.Warn("Closing sqlite store: %v", err)
			}
		})
		logger.Debug("Using sqlite database %s", store.Path())
		return store.UserStore(), store.ServiceStore(), nil
	case "postgres":
		store, err := postgres.NewStore(ctx, s.DSN)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, store.Close)
		return store.UserStore(), store.ServiceStore(), nil
	case "memory":
		logger.Warn("Using memory storage; records are lost on exit")
		return memory.NewUserStore(), memory.NewServiceStore(), nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", s.Driver)
	}
}
