package inquiry

import (
	"time"

	"github.com/google/uuid"

	"github.com/venuehub/venuehub-api/internal/pkg/pagination"
	"github.com/venuehub/venuehub-api/internal/pkg/validator"
)

// CreateInquiryRequest is the body of POST /booking-inquiries.
type CreateInquiryRequest struct {
	VenueID       string `json:"venueId" validate:"required,uuid"`
	CompanyName   string `json:"companyName" validate:"required,notblank,max=255"`
	Email         string `json:"email" validate:"required,email,max=255"`
	StartDate     string `json:"startDate" validate:"required,isodate"`
	EndDate       string `json:"endDate" validate:"required,isodate"`
	AttendeeCount int    `json:"attendeeCount" validate:"gte=1"`
}

// ListFilter narrows the admin listing.
type ListFilter struct {
	VenueID *uuid.UUID
}

// ListQuery is the parsed query string of GET /admin/booking-inquiries.
type ListQuery struct {
	VenueID string `json:"venueId" validate:"omitempty,uuid"`
	Page    int    `json:"page" validate:"gte=1"`
	Limit   int    `json:"limit" validate:"gte=1,lte=100"`
}

func (q ListQuery) Filter() ListFilter {
	var f ListFilter
	if id, err := uuid.Parse(q.VenueID); err == nil {
		f.VenueID = &id
	}
	return f
}

func (q ListQuery) Pagination() pagination.Params {
	return pagination.Params{Page: q.Page, Limit: q.Limit}
}

// InquiryResponse represents a booking inquiry in API responses and events.
type InquiryResponse struct {
	ID            string    `json:"id"`
	VenueID       string    `json:"venueId"`
	CompanyName   string    `json:"companyName"`
	Email         string    `json:"email"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	AttendeeCount int       `json:"attendeeCount"`
	CreatedAt     time.Time `json:"createdAt"`
	Version       int       `json:"version"`
}

// InquiryResponseFromEntity converts entity to response DTO
func InquiryResponseFromEntity(b *BookingInquiry) *InquiryResponse {
	return &InquiryResponse{
		ID:            b.ID.String(),
		VenueID:       b.VenueID.String(),
		CompanyName:   b.CompanyName,
		Email:         b.Email,
		StartDate:     b.StartDate.Format(validator.DateLayout),
		EndDate:       b.EndDate.Format(validator.DateLayout),
		AttendeeCount: b.AttendeeCount,
		CreatedAt:     b.CreatedAt,
		Version:       b.Version,
	}
}
