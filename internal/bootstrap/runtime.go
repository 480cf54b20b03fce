// Package bootstrap wires configuration into a running storage backend and
// the domain stores.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"devconnect/internal/config"
	"devconnect/internal/seed"
	"devconnect/internal/share"
	"devconnect/internal/storage"
	"devconnect/internal/store"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Runtime is the wired application: the storage backend and the four stores.
type Runtime struct {
	Storage  storage.Store
	Identity *store.Identity
	Content  *store.Content
	Messages *store.Messages
	Network  *store.Network

	closers []func() error
}

// OpenStorage opens the backend named by cfg.StorageBackend.
func OpenStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.Store, func() error, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return storage.NewMemory(), nil, nil
	case config.BackendSQLite:
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating data dir: %w", err)
		}
		db, err := gorm.Open(sqlite.Open(filepath.Join(cfg.DataDir, "devconnect.db")), &gorm.Config{
			Logger: storage.NewSlogGormLogger(logger),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("opening sqlite: %w", err)
		}
		kv, err := storage.NewGorm(db)
		if err != nil {
			return nil, nil, err
		}
		return kv, nil, nil
	case config.BackendRedis:
		kv, err := storage.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return kv, kv.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// InitRuntime opens storage, constructs the stores, and loads the persisted
// collections, seeding demo data where they are empty.
func InitRuntime(ctx context.Context, cfg *config.Config, logger *slog.Logger, caps share.Capabilities) (*Runtime, error) {
	blobStore, closer, err := OpenStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	rt := &Runtime{Storage: blobStore}
	if closer != nil {
		rt.closers = append(rt.closers, closer)
	}

	latency := time.Duration(cfg.SimulatedLatencyMS) * time.Millisecond
	rt.Identity, err = store.NewIdentity(ctx, blobStore, logger, latency)
	if err != nil {
		rt.Close()
		return nil, err
	}

	rt.Content = store.NewContent(blobStore, rt.Identity, caps, logger, cfg.ShareBaseURL)
	rt.Messages = store.NewMessages(blobStore, rt.Identity, logger)
	rt.Network = store.NewNetwork(blobStore, rt.Identity, seed.NewFactory(time.Now().UnixNano()), 8, logger)

	if cfg.SeedDemoData {
		if err := rt.Content.Load(ctx); err != nil {
			rt.Close()
			return nil, err
		}
		if err := rt.Messages.Load(ctx); err != nil {
			rt.Close()
			return nil, err
		}
	}

	return rt, nil
}

// Close releases backend resources.
func (r *Runtime) Close() {
	for _, closer := range r.closers {
		_ = closer()
	}
}
