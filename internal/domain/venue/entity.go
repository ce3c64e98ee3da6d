package venue

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Venue is a bookable location. Venues are created by seeding only.
type Venue struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	Name          string         `db:"name" json:"name"`
	City          string         `db:"city" json:"city"`
	Country       string         `db:"country" json:"country"`
	Address       string         `db:"address" json:"address"`
	Capacity      int            `db:"capacity" json:"capacity"`
	PricePerNight float64        `db:"price_per_night" json:"pricePerNight"`
	Description   string         `db:"description" json:"description"`
	Amenities     pq.StringArray `db:"amenities" json:"amenities"`
	CreatedAt     time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updatedAt"`
}
