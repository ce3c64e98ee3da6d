package inquiry

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/venuehub/venuehub-api/internal/domain/venue"
	"github.com/venuehub/venuehub-api/internal/pkg/events"
)

type fakeVenues struct {
	venues map[uuid.UUID]*venue.Venue
	err    error
}

func (f *fakeVenues) GetByID(_ context.Context, id uuid.UUID) (*venue.Venue, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.venues[id], nil
}

// fakeRepository serialises transactions and applies the same inclusive
// overlap rule as the SQL query.
type fakeRepository struct {
	mu        sync.Mutex
	rows      []*BookingInquiry
	createErr error
	txCount   int
}

func (f *fakeRepository) RunInTx(ctx context.Context, fn func(tx TxRepository) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.txCount++
	tx := &fakeTx{repo: f}
	if err := fn(tx); err != nil {
		return err
	}
	f.rows = append(f.rows, tx.pending...)
	return nil
}

func (f *fakeRepository) List(_ context.Context, filter ListFilter, limit, offset int) ([]*BookingInquiry, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []*BookingInquiry
	for i := len(f.rows) - 1; i >= 0; i-- {
		b := f.rows[i]
		if filter.VenueID != nil && b.VenueID != *filter.VenueID {
			continue
		}
		matched = append(matched, b)
	}
	total := len(matched)
	if offset >= total {
		return []*BookingInquiry{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (f *fakeRepository) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

type fakeTx struct {
	repo    *fakeRepository
	pending []*BookingInquiry
}

func (t *fakeTx) FindOverlapping(_ context.Context, venueID uuid.UUID, start, end time.Time) (*BookingInquiry, error) {
	for _, b := range t.repo.rows {
		if b.VenueID == venueID && b.Overlaps(start, end) {
			return b, nil
		}
	}
	return nil, nil
}

func (t *fakeTx) Create(_ context.Context, b *BookingInquiry) error {
	if t.repo.createErr != nil {
		return t.repo.createErr
	}
	t.pending = append(t.pending, b)
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, e)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

var errBrokerDown = errors.New("broker down")

// fixedNow is the submission time used by service tests.
var fixedNow = time.Date(2030, time.May, 15, 10, 30, 0, 0, time.UTC)

type testEnv struct {
	svc       *Service
	repo      *fakeRepository
	publisher *fakePublisher
	venue     *venue.Venue
}

func newTestEnv(capacity int) *testEnv {
	v := &venue.Venue{ID: uuid.New(), Name: "Mountain Vista Lodge", City: "Denver", Capacity: capacity}
	repo := &fakeRepository{}
	pub := &fakePublisher{}
	svc := NewService(repo, &fakeVenues{venues: map[uuid.UUID]*venue.Venue{v.ID: v}}, pub)
	svc.now = func() time.Time { return fixedNow }
	return &testEnv{svc: svc, repo: repo, publisher: pub, venue: v}
}

func (e *testEnv) request(start, end string, attendees int) *CreateInquiryRequest {
	return &CreateInquiryRequest{
		VenueID:       e.venue.ID.String(),
		CompanyName:   "Acme Corp",
		Email:         "events@acme.test",
		StartDate:     start,
		EndDate:       end,
		AttendeeCount: attendees,
	}
}
