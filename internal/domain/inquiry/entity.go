package inquiry

import (
	"time"

	"github.com/google/uuid"
)

// BookingInquiry is a request to book a venue for an inclusive date range.
// StartDate and EndDate are calendar dates at midnight UTC.
type BookingInquiry struct {
	ID            uuid.UUID `db:"id"`
	VenueID       uuid.UUID `db:"venue_id"`
	CompanyName   string    `db:"company_name"`
	Email         string    `db:"email"`
	StartDate     time.Time `db:"start_date"`
	EndDate       time.Time `db:"end_date"`
	AttendeeCount int       `db:"attendee_count"`
	CreatedAt     time.Time `db:"created_at"`
	Version       int       `db:"version"`
}

// Overlaps reports whether the inclusive ranges [StartDate, EndDate] and [start, end] intersect.
func (b *BookingInquiry) Overlaps(start, end time.Time) bool {
	return !b.StartDate.After(end) && !b.EndDate.Before(start)
}
