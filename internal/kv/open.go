package kv

import (
	"context"
	"fmt"

	"github.com/01moynul/kashish-pos/internal/config"
	"github.com/01moynul/kashish-pos/internal/database"
	"github.com/rs/zerolog"
)

// Open returns the backend selected by cfg.StorageDriver.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (Store, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		log.Warn().Msg("Using in-memory storage; data is lost on restart")
		return NewMemory(), nil
	case config.DriverFile:
		return NewFile(cfg.StorageDir)
	case config.DriverRedis:
		return NewRedis(ctx, cfg.RedisAddr, cfg.RedisPrefix)
	case config.DriverMySQL:
		db, err := database.OpenDBWithDSN(ctx, cfg.MySQLDSN, log)
		if err != nil {
			return nil, err
		}
		return NewMySQL(db), nil
	default:
		return nil, fmt.Errorf("kv: unknown storage driver %q", cfg.StorageDriver)
	}
}
