package database

import (
	"context"
	"fmt"

	"github.com/riyaziyyat/exam-backend/internal/config"
	"github.com/riyaziyyat/exam-backend/internal/store"
	"github.com/rs/zerolog"
)

// OpenStore connects the record store selected by STORE_DRIVER and makes sure
// its indexes exist. The caller owns the store and must Close it.
func OpenStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (store.Store, error) {
	var st store.Store

	switch cfg.StoreDriver {
	case config.StoreMongo:
		db, err := NewMongoDatabase(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		st = store.NewMongoStore(db)
	case config.StorePostgres:
		pool, err := NewPostgresPool(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		st = store.NewPostgresStore(pool)
	case config.StoreMemory:
		log.Warn().Msg("Using in-memory store, data is lost on restart")
		st = store.NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	if err := st.EnsureIndexes(ctx); err != nil {
		_ = st.Close(ctx)
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	log.Info().Str("driver", cfg.StoreDriver).Msg("Record store ready")
	return st, nil
}
