package theme

import (
	"context"
	"fmt"

	"toolbox/core/database"
	"toolbox/core/storage"

	"gorm.io/gorm"
)

const (
	BackendMemory   = "memory"
	BackendDatabase = "database"
	BackendObject   = "object"
)

// NewStore opens the store named by cfg.Backend. Only the selected backend's
// configuration is used.
func NewStore(ctx context.Context, cfg Config, dbCfg database.Config, storageCfg storage.Config) (Store, error) {
	switch cfg.Backend {
	case BackendMemory, "":
		return NewMemoryStore(), nil

	case BackendDatabase:
		db, err := database.Connect(dbCfg)
		if err != nil {
			return nil, err
		}
		return openDatabaseStore(ctx, db)

	case BackendObject:
		client, err := storage.NewClient(storageCfg)
		if err != nil {
			return nil, err
		}
		if err := storage.EnsureBucket(ctx, client, storageCfg.Bucket, storageCfg.Region); err != nil {
			return nil, err
		}
		return NewObjectStore(client, storageCfg.Bucket, storageCfg.Prefix), nil

	default:
		return nil, fmt.Errorf("unknown theme backend %q", cfg.Backend)
	}
}

// openDatabaseStore migrates db and closes it if migration fails.
func openDatabaseStore(ctx context.Context, db *gorm.DB) (*DatabaseStore, error) {
	store := NewDatabaseStore(db)
	if err := store.Migrate(ctx); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return nil, err
	}
	return store, nil
}
