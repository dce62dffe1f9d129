package store

import (
	"context"
	"fmt"

	"github.com/rashikfit/backend/config"
	"github.com/rashikfit/backend/internal/domain"
)

// Open builds the Store selected by cfg.Type
func Open(ctx context.Context, cfg config.StoreConfig) (domain.Store, error) {
	switch cfg.Type {
	case "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return OpenSQLite(cfg.Path)
	case "redis":
		return NewRedisStore(ctx, cfg.RedisURL, cfg.RedisPrefix)
	case "dynamodb":
		return NewDynamoStore(ctx, cfg.DynamoTable, cfg.DynamoRegion)
	default:
		return nil, fmt.Errorf("unsupported store type: %s", cfg.Type)
	}
}
