package venue

import (
	"time"

	"github.com/venuehub/venuehub-api/internal/pkg/pagination"
)

// ListQuery is the parsed query string of GET /venues.
type ListQuery struct {
	City        *string  `json:"city" validate:"omitempty,notblank,max=255"`
	MinCapacity *int     `json:"minCapacity" validate:"omitempty,gte=1"`
	MaxPrice    *float64 `json:"maxPrice" validate:"omitempty,gte=0"`
	Page        int      `json:"page" validate:"gte=1"`
	Limit       int      `json:"limit" validate:"gte=1,lte=100"`
}

func (q ListQuery) Filter() Filter {
	return Filter{City: q.City, MinCapacity: q.MinCapacity, MaxPrice: q.MaxPrice}
}

func (q ListQuery) Pagination() pagination.Params {
	return pagination.Params{Page: q.Page, Limit: q.Limit}
}

// VenueResponse represents venue in API response
type VenueResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	City          string    `json:"city"`
	Country       string    `json:"country"`
	Address       string    `json:"address"`
	Capacity      int       `json:"capacity"`
	PricePerNight float64   `json:"pricePerNight"`
	Description   string    `json:"description"`
	Amenities     []string  `json:"amenities"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// VenueResponseFromEntity converts entity to response DTO
func VenueResponseFromEntity(v *Venue) *VenueResponse {
	amenities := []string(v.Amenities)
	if amenities == nil {
		amenities = []string{}
	}
	return &VenueResponse{
		ID:            v.ID.String(),
		Name:          v.Name,
		City:          v.City,
		Country:       v.Country,
		Address:       v.Address,
		Capacity:      v.Capacity,
		PricePerNight: v.PricePerNight,
		Description:   v.Description,
		Amenities:     amenities,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func venueResponses(venues []*Venue) []*VenueResponse {
	items := make([]*VenueResponse, 0, len(venues))
	for _, v := range venues {
		items = append(items, VenueResponseFromEntity(v))
	}
	return items
}
