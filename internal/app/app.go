package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/turma-roster/internal/config"
	"github.com/riskibarqy/turma-roster/internal/infrastructure/repository/kv"
	"github.com/riskibarqy/turma-roster/internal/interfaces/httpapi"
	"github.com/riskibarqy/turma-roster/internal/platform/cache"
	"github.com/riskibarqy/turma-roster/internal/platform/kvstore"
	"github.com/riskibarqy/turma-roster/internal/platform/logging"
	"github.com/riskibarqy/turma-roster/internal/usecase"
)

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	store, location, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	var cacheStore *cache.Store
	if cfg.CacheEnabled {
		cacheStore = cache.NewStore(cfg.CacheTTL)
		store = kvstore.NewCached(store, cacheStore)
	}
	_, atomicRemove := store.(kvstore.Batcher)
	logger.Info("storage ready",
		"driver", cfg.StorageDriver,
		"location", location,
		"cache_enabled", cfg.CacheEnabled,
		"atomic_group_remove", atomicRemove,
	)

	groupRepo := kv.NewGroupRepository(store)
	playerRepo := kv.NewPlayerRepository(store)

	if cfg.StorageSeedDemo {
		if err := kv.Seed(ctx, groupRepo, playerRepo, kv.DemoRoster()); err != nil {
			return nil, fmt.Errorf("seed demo roster: %w", err)
		}
		logger.Info("demo roster seeded")
	}

	groupSvc := usecase.NewGroupService(groupRepo, playerRepo, logger, cfg.SummaryWorkers)
	playerSvc := usecase.NewPlayerService(groupRepo, playerRepo, logger)

	handler := httpapi.NewHandler(groupSvc, playerSvc, cacheStore, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}

// openStore also reports where the data lives, for the startup log.
func openStore(cfg config.Config) (kvstore.Store, string, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		return kvstore.NewMemory(), "memory", nil
	case config.StorageFile:
		store, err := kvstore.OpenFile(cfg.StoragePath)
		if err != nil {
			return nil, "", fmt.Errorf("open storage file: %w", err)
		}
		return store, store.Path(), nil
	default:
		return nil, "", fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}
