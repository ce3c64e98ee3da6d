package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/venuehub/venuehub-api/docs"
	"github.com/venuehub/venuehub-api/internal/domain/inquiry"
	"github.com/venuehub/venuehub-api/internal/domain/venue"
	"github.com/venuehub/venuehub-api/internal/middleware"
	"github.com/venuehub/venuehub-api/internal/pkg/jwt"
	"github.com/venuehub/venuehub-api/internal/pkg/logger"
	pkgresponse "github.com/venuehub/venuehub-api/internal/pkg/response"
)

const version = "1.0.0"

type pinger interface {
	PingContext(ctx context.Context) error
}

type routerDeps struct {
	db             pinger
	venues         *venue.Handler
	inquiries      *inquiry.Handler
	jwt            *jwt.Service
	allowedOrigins []string
}

func newRouter(d routerDeps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(d.allowedOrigins))
	r.Use(chimw.Compress(5))

	r.Get("/health", healthHandler(d.db))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(false),
		httpSwagger.DocExpansion("none"),
		httpSwagger.PersistAuthorization(true),
	))

	authMiddleware := middleware.Auth(d.jwt)

	// Public paths are served both unprefixed and under /api/v1.
	mount := func(r chi.Router) {
		r.Mount("/venues", d.venues.Routes())
		r.Mount("/booking-inquiries", d.inquiries.Routes())
		r.Mount("/admin/booking-inquiries", d.inquiries.AdminRoutes(authMiddleware, middleware.RequireAdmin()))
	}
	mount(r)
	r.Route("/api/v1", mount)

	return r
}

func healthHandler(db pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.LogWarn(r.Context(), "Health check failed", "error", err.Error())
			pkgresponse.ServiceUnavailable(w, "Database unavailable")
			return
		}

		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": version,
			"db":      "up",
		})
	}
}
