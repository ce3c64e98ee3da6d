// Command seed loads the venue catalog into the database.
//
// The catalog comes from -file when given, from S3 when SEED_CATALOG_KEY and
// S3_BUCKET are set, and from the built-in catalog otherwise. Venues already
// present (same name and city) are skipped, so the command can be rerun.
package main

import (
	"context"
	"flag"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/venuehub/venuehub-api/internal/config"
	"github.com/venuehub/venuehub-api/internal/domain/venue"
	"github.com/venuehub/venuehub-api/internal/pkg/cache"
	"github.com/venuehub/venuehub-api/internal/pkg/database"
	"github.com/venuehub/venuehub-api/internal/pkg/logger"
	"github.com/venuehub/venuehub-api/internal/pkg/storage"
)

func main() {
	file := flag.String("file", "", "path to a JSON catalog file")
	flag.Parse()

	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	if err := database.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply migrations")
	}

	entries, source, err := loadEntries(ctx, cfg, *file)
	if err != nil {
		log.Fatal().Err(err).Str("source", source).Msg("Failed to load catalog")
	}

	inserted, err := venue.Seed(ctx, venue.NewRepository(db), entries)
	if err != nil {
		log.Fatal().Err(err).Int("inserted", inserted).Msg("Seeding failed")
	}

	log.Info().
		Str("source", source).
		Int("catalog", len(entries)).
		Int("inserted", inserted).
		Msg("Venue catalog seeded")

	if inserted == 0 {
		return
	}

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, cached venue listings expire on their own")
		return
	}
	defer database.CloseRedis(redis)

	removed, err := cache.NewRedisCache(redis, "venues:", cfg.CacheTTL).Flush(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to flush venue cache")
		return
	}
	log.Info().Int("keys", removed).Msg("Venue cache flushed")
}

func loadEntries(ctx context.Context, cfg *config.Config, file string) ([]venue.CatalogEntry, string, error) {
	switch {
	case file != "":
		local, err := storage.NewLocalStorage(filepath.Dir(file))
		if err != nil {
			return nil, file, err
		}
		entries, err := venue.LoadCatalog(ctx, local, filepath.Base(file))
		return entries, file, err

	case cfg.S3Bucket != "" && cfg.SeedCatalogKey != "":
		source := "s3://" + cfg.S3Bucket + "/" + cfg.SeedCatalogKey
		s3, err := storage.NewS3Storage(ctx, storage.Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		if err != nil {
			return nil, source, err
		}
		entries, err := venue.LoadCatalog(ctx, s3, cfg.SeedCatalogKey)
		return entries, source, err

	default:
		entries, err := venue.DefaultCatalog()
		return entries, "built-in", err
	}
}
