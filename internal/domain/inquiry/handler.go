package inquiry

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/venuehub/venuehub-api/internal/middleware"
	"github.com/venuehub/venuehub-api/internal/pkg/errorhandler"
	"github.com/venuehub/venuehub-api/internal/pkg/logger"
	"github.com/venuehub/venuehub-api/internal/pkg/pagination"
	"github.com/venuehub/venuehub-api/internal/pkg/response"
	"github.com/venuehub/venuehub-api/internal/pkg/validator"
)

// Handler handles booking inquiry HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates booking inquiry handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /booking-inquiries
// @Summary Create a booking inquiry
// @Tags BookingInquiries
// @Accept json
// @Produce json
// @Param request body CreateInquiryRequest true "Inquiry"
// @Success 201 {object} response.Response{data=InquiryResponse}
// @Failure 400,409,500 {object} response.Response
// @Router /booking-inquiries [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateInquiryRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		errorhandler.HandleValidationError(r.Context(), w, errs)
		return
	}

	inquiry, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrDateConflict):
			response.Conflict(w, "Date range conflicts with existing booking")
		case errors.Is(err, ErrInvalidInput):
			errorhandler.HandleError(r.Context(), w, http.StatusBadRequest, "BAD_REQUEST", inputErrorMessage(err), err)
		default:
			errorhandler.HandleInternal(r.Context(), w, err)
		}
		return
	}

	response.Created(w, InquiryResponseFromEntity(inquiry))
}

// List handles GET /admin/booking-inquiries
// @Summary List booking inquiries
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param venueId query string false "Venue ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (max 100)" default(10)
// @Success 200 {object} response.Response{data=[]InquiryResponse,meta=pagination.Meta}
// @Failure 400,401,403,500 {object} response.Response
// @Router /admin/booking-inquiries [get]
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

	logger.LogDebug(r.Context(), "Booking inquiries listed",
		"subject", middleware.GetSubject(r.Context()),
		"total", result.Meta.Total,
	)

	items := make([]*InquiryResponse, 0, len(result.Inquiries))
	for _, b := range result.Inquiries {
		items = append(items, InquiryResponseFromEntity(b))
	}
	response.WithMeta(w, items, result.Meta)
}

// inputErrorMessage renders invalid-input errors for clients.
func inputErrorMessage(err error) string {
	var capErr *CapacityError
	switch {
	case errors.As(err, &capErr):
		return fmt.Sprintf("Attendee count exceeds venue capacity of %d", capErr.Capacity)
	case errors.Is(err, ErrInvalidDateRange):
		return "Start date must be before end date"
	case errors.Is(err, ErrStartDateInPast):
		return "Start date cannot be in the past"
	case errors.Is(err, ErrVenueNotFound):
		return "Venue not found"
	default:
		return "Invalid booking inquiry"
	}
}

func parseListQuery(values url.Values) (ListQuery, map[string]string) {
	q := ListQuery{
		VenueID: strings.TrimSpace(values.Get("venueId")),
		Page:    pagination.DefaultPage,
		Limit:   pagination.DefaultLimit,
	}
	errs := map[string]string{}

	for field, dst := range map[string]*int{"page": &q.Page, "limit": &q.Limit} {
		raw := strings.TrimSpace(values.Get(field))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs[field] = "Must be an integer"
			continue
		}
		*dst = n
	}

	for field, msg := range validator.Validate(&q) {
		if _, exists := errs[field]; !exists {
			errs[field] = msg
		}
	}

	return q, errs
}
