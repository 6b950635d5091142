package persistence

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/khoahotran/planmoni-site/internal/config"
	"github.com/khoahotran/planmoni-site/internal/domain/kvstore"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

// OpenStore connects the backend named by storage.driver. The returned func
// releases the underlying connection.
func OpenStore(ctx context.Context, cfg config.Config, log logger.Logger) (kvstore.Store, func(), error) {
	log.Info("Opening content store", zap.String("driver", cfg.Storage.Driver))

	switch cfg.Storage.Driver {
	case config.StorageMemory:
		return NewMemoryKVStore(), func() {}, nil

	case config.StorageSQLite, "":
		s, err := NewSQLiteKVStore(cfg.Storage.SQLitePath, log)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil

	case config.StoragePostgres:
		pool, err := NewPostgresPool(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return NewPostgresKVStore(pool, log), pool.Close, nil

	case config.StorageRedis:
		rdb, err := NewRedisClient(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisKVStore(rdb, cfg.Storage.KeyPrefix), func() { rdb.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
