// Package bootstrap builds the runtime dependencies the server and the
// command-line tools share.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"pixelgram/internal/cache"
	"pixelgram/internal/config"
	"pixelgram/internal/database"
	"pixelgram/internal/media"
	"pixelgram/internal/middleware"
	"pixelgram/internal/repository"
	"pixelgram/internal/repository/memory"
	"pixelgram/internal/seed"
	"pixelgram/internal/session"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedSamples loads the sample posts and reels into a sparse store.
	SeedSamples bool
}

// Runtime holds the connections and stores a process needs.
type Runtime struct {
	Store    *repository.Store
	DB       *gorm.DB      // nil for the memory driver
	Redis    *redis.Client // nil when Redis is unreachable or unset
	Sessions session.Store
	Media    media.Storage
}

// InitRuntime connects the configured store, Redis and media backend and
// optionally seeds sample content.
func InitRuntime(ctx context.Context, cfg *config.Config, opts Options) (*Runtime, error) {
	rt := &Runtime{}

	switch cfg.DBDriver {
	case config.DriverMemory:
		middleware.Logger.Warn("using the in-memory store; data is lost on restart")
		rt.Store = memory.NewStore()
	default:
		db, err := database.Connect(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("database connection failed: %w", err)
		}
		rt.DB = db
		rt.Store = repository.NewStore(db)
	}

	rt.Redis = cache.Connect(ctx, cfg.RedisURL)
	if rt.Redis != nil {
		rt.Sessions = session.NewRedisStore(rt.Redis)
	} else {
		rt.Sessions = session.NewMemoryStore()
	}

	storage, err := NewMediaStorage(cfg)
	if err != nil {
		_ = rt.Close()
		return nil, err
	}
	rt.Media = storage

	if opts.SeedSamples && !cfg.IsProduction() {
		res, err := seed.NewSeeder(rt.Store, seed.Options{}).SamplePosts(ctx)
		if err != nil {
			_ = rt.Close()
			return nil, fmt.Errorf("failed to seed sample content: %w", err)
		}
		if !res.Seeded {
			middleware.Logger.Info("sample content skipped", slog.Int64("existing_posts", res.Existing))
		}
	}

	return rt, nil
}

// NewMediaStorage returns the storage backend named by MEDIA_BACKEND.
func NewMediaStorage(cfg *config.Config) (media.Storage, error) {
	switch cfg.MediaBackend {
	case config.MediaBackendCloudinary:
		s, err := media.NewCloudinaryStorage(cfg.CloudinaryURL, cfg.CloudinaryFolder)
		if err != nil {
			return nil, fmt.Errorf("cloudinary storage: %w", err)
		}
		return s, nil
	default:
		s, err := media.NewLocalStorage(cfg.UploadDir)
		if err != nil {
			return nil, fmt.Errorf("local storage: %w", err)
		}
		return s, nil
	}
}

// Close releases the database and Redis connections.
func (r *Runtime) Close() error {
	var errs []error
	if r.DB != nil {
		if sqlDB, err := r.DB.DB(); err == nil {
			if cerr := sqlDB.Close(); cerr != nil {
				errs = append(errs, fmt.Errorf("close database: %w", cerr))
			}
		}
	}
	if r.Redis != nil {
		if err := r.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	return errors.Join(errs...)
}
