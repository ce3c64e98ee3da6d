package inquiry

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns public booking inquiry routes
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)

	return r
}

// AdminRoutes returns operator routes guarded by the given middleware
func (h *Handler) AdminRoutes(guards ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(guards...)

	r.Get("/", h.List)

	return r
}
