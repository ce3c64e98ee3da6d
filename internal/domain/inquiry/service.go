package inquiry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/venuehub/venuehub-api/internal/domain/venue"
	"github.com/venuehub/venuehub-api/internal/pkg/events"
	"github.com/venuehub/venuehub-api/internal/pkg/logger"
	"github.com/venuehub/venuehub-api/internal/pkg/pagination"
	"github.com/venuehub/venuehub-api/internal/pkg/validator"
)

// EventCreated is published after an inquiry has been committed.
const EventCreated = "booking_inquiry.created"

const defaultPublishTimeout = 2 * time.Second

// VenueReader loads the venue an inquiry targets.
type VenueReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*venue.Venue, error)
}

// ListResult is one page of inquiries.
type ListResult struct {
	Inquiries []*BookingInquiry
	Meta      pagination.Meta
}

// Service handles booking inquiry business logic
type Service struct {
	repo      Repository
	venues    VenueReader
	publisher events.Publisher
	now       func() time.Time

	publishTimeout time.Duration
}

// NewService creates booking inquiry service. publisher may be nil.
func NewService(repo Repository, venues VenueReader, publisher events.Publisher) *Service {
	return &Service{
		repo:      repo,
		venues:    venues,
		publisher: publisher,
		now:       time.Now,

		publishTimeout: defaultPublishTimeout,
	}
}

// Create validates req and stores it as a new inquiry.
//
// Checks run in order and the first failure is returned: date order, start
// not before the submission instant, venue existence, attendee count within
// capacity, then the overlap check and insert inside one transaction.
// Both date checks use the submitted instants; only the calendar dates are stored.
func (s *Service) Create(ctx context.Context, req *CreateInquiryRequest) (*BookingInquiry, error) {
	startAt, err := validator.ParseDateTime(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: startDate: %w", ErrInvalidInput, err)
	}
	endAt, err := validator.ParseDateTime(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: endDate: %w", ErrInvalidInput, err)
	}
	if req.AttendeeCount < 1 {
		return nil, fmt.Errorf("%w: attendeeCount must be positive", ErrInvalidInput)
	}

	if !startAt.Before(endAt) {
		logger.LogWarn(ctx, "Invalid inquiry date range", "start_date", req.StartDate, "end_date", req.EndDate)
		return nil, ErrInvalidDateRange
	}

	now := s.now().UTC()
	if startAt.Before(now) {
		logger.LogWarn(ctx, "Inquiry start date in the past", "start_date", req.StartDate)
		return nil, ErrStartDateInPast
	}

	start := validator.CalendarDate(startAt)
	end := validator.CalendarDate(endAt)

	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		return nil, ErrVenueNotFound
	}

	v, err := s.venues.GetByID(ctx, venueID)
	if err != nil && !errors.Is(err, venue.ErrVenueNotFound) {
		return nil, err
	}
	if v == nil {
		logger.LogWarn(ctx, "Inquiry for unknown venue", "venue_id", venueID)
		return nil, ErrVenueNotFound
	}

	if req.AttendeeCount > v.Capacity {
		logger.LogWarn(ctx, "Inquiry exceeds venue capacity",
			"venue_id", venueID, "attendee_count", req.AttendeeCount, "capacity", v.Capacity)
		return nil, &CapacityError{Capacity: v.Capacity}
	}

	inquiry := &BookingInquiry{
		ID:            uuid.New(),
		VenueID:       venueID,
		CompanyName:   req.CompanyName,
		Email:         req.Email,
		StartDate:     start,
		EndDate:       end,
		AttendeeCount: req.AttendeeCount,
		CreatedAt:     now,
		Version:       0,
	}

	err = s.repo.RunInTx(ctx, func(tx TxRepository) error {
		existing, err := tx.FindOverlapping(ctx, venueID, start, end)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrDateConflict
		}
		return tx.Create(ctx, inquiry)
	})
	if err != nil {
		if errors.Is(err, ErrDateConflict) {
			logger.LogWarn(ctx, "Inquiry date range conflicts with existing booking",
				"venue_id", venueID, "start_date", req.StartDate, "end_date", req.EndDate)
		}
		return nil, err
	}

	logger.LogInfo(ctx, "Booking inquiry created", "inquiry_id", inquiry.ID, "venue_id", venueID)
	s.publishCreated(ctx, inquiry)

	return inquiry, nil
}

// List returns inquiries for operators, newest first.
func (s *Service) List(ctx context.Context, filter ListFilter, page pagination.Params) (*ListResult, error) {
	inquiries, total, err := s.repo.List(ctx, filter, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	return &ListResult{Inquiries: inquiries, Meta: pagination.NewMeta(page, total)}, nil
}

// publishCreated is best effort: the inquiry is already committed, so a slow
// or unreachable broker is cut off after publishTimeout.
func (s *Service) publishCreated(ctx context.Context, b *BookingInquiry) {
	if s.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.publishTimeout)
	defer cancel()

	err := s.publisher.Publish(ctx, events.Event{
		Type:       EventCreated,
		Key:        b.VenueID.String(),
		Payload:    InquiryResponseFromEntity(b),
		OccurredAt: b.CreatedAt,
	})
	if err != nil {
		logger.LogError(ctx, err, "Failed to publish inquiry event", "inquiry_id", b.ID)
	}
}
