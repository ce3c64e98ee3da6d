package venue

import "github.com/go-chi/chi/v5"

// Routes returns venue routes
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/cities", h.Cities)
	r.Get("/{id}", h.GetByID)

	return r
}
