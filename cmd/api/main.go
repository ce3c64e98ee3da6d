// @title VenueHub API
// @version 1.0
// @description Venue catalog and booking inquiries for corporate offsites.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/venuehub/venuehub-api/internal/config"
	"github.com/venuehub/venuehub-api/internal/domain/inquiry"
	"github.com/venuehub/venuehub-api/internal/domain/venue"
	"github.com/venuehub/venuehub-api/internal/pkg/cache"
	"github.com/venuehub/venuehub-api/internal/pkg/database"
	"github.com/venuehub/venuehub-api/internal/pkg/events"
	"github.com/venuehub/venuehub-api/internal/pkg/jwt"
	"github.com/venuehub/venuehub-api/internal/pkg/logger"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting VenueHub API")

	if cfg.IsProduction() && cfg.JWTSecret == config.DefaultJWTSecret {
		log.Fatal().Msg("JWT_SECRET must be set in production")
	}

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	if cfg.AutoMigrate {
		migrateCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		err := database.Migrate(migrateCtx, db)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.KafkaEnabled() {
		kp, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaInquiryTopic)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create Kafka publisher")
		}
		publisher = kp
		log.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaInquiryTopic).Msg("Kafka publisher enabled")
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close event publisher")
		}
	}()

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL)
	venueCache := cache.NewRedisCache(redis, "venues:", cfg.CacheTTL)

	// ---------- Repositories ----------
	venueRepo := venue.NewRepository(db)
	inquiryRepo := inquiry.NewRepository(db)

	// ---------- Services ----------
	venueService := venue.NewService(venueRepo, venueCache)
	inquiryService := inquiry.NewService(inquiryRepo, venueRepo, publisher)

	// ---------- Handlers ----------
	r := newRouter(routerDeps{
		db:             db,
		venues:         venue.NewHandler(venueService),
		inquiries:      inquiry.NewHandler(inquiryService),
		jwt:            jwtService,
		allowedOrigins: cfg.AllowedOrigins,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		return
	}

	log.Info().Msg("Server exited properly")
}
