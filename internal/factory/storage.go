package factory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lifefork/lifefork-server/internal/config"
	storepkg "github.com/lifefork/lifefork-server/internal/store"
	storemem "github.com/lifefork/lifefork-server/internal/store/memory"
	storemongo "github.com/lifefork/lifefork-server/internal/store/mongo"
	storepg "github.com/lifefork/lifefork-server/internal/store/postgres"
	storesqlite "github.com/lifefork/lifefork-server/internal/store/sqlite"
)

// NewStore selects and constructs the configured store backend. Backend
// choice lives here; handlers and services never branch on the driver.
func NewStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (storepkg.Store, error) {
	switch cfg.StoreDriver {
	case "memory":
		log.Warn().Msg("using in-memory store; records are lost on restart")
		return storemem.New(), nil

	case "postgres":
		db, err := storepg.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := storepg.Bootstrap(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("bootstrap postgres schema: %w", err)
		}
		log.Info().Str("driver", "postgres").Msg("store ready")
		return storepg.NewWithDB(db), nil

	case "sqlite":
		db, err := storesqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		log.Info().Str("driver", "sqlite").Str("path", cfg.SQLitePath).Msg("store ready")
		return storesqlite.NewWithDB(db), nil

	case "mongo":
		client, err := storemongo.Open(ctx, cfg.MongoURI)
		if err != nil {
			return nil, fmt.Errorf("open mongo: %w", err)
		}
		log.Info().Str("driver", "mongo").Str("database", cfg.MongoDatabase).Msg("store ready")
		return storemongo.NewWithClient(client, cfg.MongoDatabase), nil

	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER: %s", cfg.StoreDriver)
	}
}
