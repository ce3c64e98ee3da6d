package venue

import (
	"errors"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/venuehub/venuehub-api/internal/pkg/errorhandler"
	"github.com/venuehub/venuehub-api/internal/pkg/pagination"
	"github.com/venuehub/venuehub-api/internal/pkg/response"
	"github.com/venuehub/venuehub-api/internal/pkg/validator"
)

// Handler handles venue HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates venue handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /venues
// @Summary List venues
// @Tags Venues
// @Produce json
// @Param city query string false "Exact city name"
// @Param minCapacity query int false "Minimum capacity"
// @Param maxPrice query number false "Maximum price per night"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (max 100)" default(10)
// @Success 200 {object} response.Response{data=[]VenueResponse,meta=pagination.Meta}
// @Failure 400,500 {object} response.Response
// @Router /venues [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query, errs := parseListQuery(r.URL.Query())
	if len(errs) > 0 {
		errorhandler.HandleValidationError(r.Context(), w, errs)
		return
	}

	result, err := h.service.List(r.Context(), query.Filter(), query.Pagination())
	if err != nil {
		errorhandler.HandleInternal(r.Context(), w, err)
		return
	}

	response.WithMeta(w, venueResponses(result.Venues), result.Meta)
}

// Cities handles GET /venues/cities
// @Summary List distinct venue cities
// @Tags Venues
// @Produce json
// @Success 200 {object} response.Response{data=[]string}
// @Failure 500 {object} response.Response
// @Router /venues/cities [get]
func (h *Handler) Cities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.service.Cities(r.Context())
	if err != nil {
		errorhandler.HandleInternal(r.Context(), w, err)
		return
	}
	response.OK(w, cities)
}

// GetByID handles GET /venues/{id}
// @Summary Get venue by ID
// @Tags Venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} response.Response{data=VenueResponse}
// @Failure 400,404,500 {object} response.Response
// @Router /venues/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid venue ID")
		return
	}

	v, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			response.NotFound(w, "Venue not found")
			return
		}
		errorhandler.HandleInternal(r.Context(), w, err)
		return
	}

	response.OK(w, VenueResponseFromEntity(v))
}

// parseListQuery converts the query string, reporting per-field errors.
// Empty parameters are treated as absent.
func parseListQuery(values url.Values) (ListQuery, map[string]string) {
	q := ListQuery{Page: pagination.DefaultPage, Limit: pagination.DefaultLimit}
	errs := map[string]string{}

	if city := values.Get("city"); city != "" {
		q.City = &city
	}
	if raw := strings.TrimSpace(values.Get("minCapacity")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs["minCapacity"] = "Must be an integer"
		} else {
			q.MinCapacity = &n
		}
	}
	if raw := strings.TrimSpace(values.Get("maxPrice")); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			errs["maxPrice"] = "Must be a number"
		} else {
			q.MaxPrice = &f
		}
	}
	if raw := strings.TrimSpace(values.Get("page")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs["page"] = "Must be an integer"
		} else {
			q.Page = n
		}
	}
	if raw := strings.TrimSpace(values.Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs["limit"] = "Must be an integer"
		} else {
			q.Limit = n
		}
	}

	for field, msg := range validator.Validate(&q) {
		if _, exists := errs[field]; !exists {
			errs[field] = msg
		}
	}

	return q, errs
}
