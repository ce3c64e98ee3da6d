package inquiry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/venuehub/venuehub-api/internal/pkg/validator"
)

const queryTimeout = 3 * time.Second

const inquiryColumns = `id, venue_id, company_name, email, start_date, end_date,
	attendee_count, created_at, version`

const constraintDateRange = "booking_inquiries_date_range_check"

// Repository defines booking inquiry data access interface
type Repository interface {
	// RunInTx executes fn in a single READ COMMITTED transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	RunInTx(ctx context.Context, fn func(tx TxRepository) error) error
	List(ctx context.Context, filter ListFilter, limit, offset int) ([]*BookingInquiry, int, error)
}

// TxRepository is the set of operations available inside RunInTx.
type TxRepository interface {
	FindOverlapping(ctx context.Context, venueID uuid.UUID, start, end time.Time) (*BookingInquiry, error)
	Create(ctx context.Context, b *BookingInquiry) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates booking inquiry repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) RunInTx(ctx context.Context, fn func(tx TxRepository) error) error {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("begin inquiry transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&txRepository{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return mapPQError(fmt.Errorf("commit inquiry transaction: %w", err))
	}
	return nil
}

func (r *repository) List(ctx context.Context, filter ListFilter, limit, offset int) ([]*BookingInquiry, int, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	where := ""
	args := []interface{}{}
	if filter.VenueID != nil {
		where = "WHERE venue_id = $1"
		args = append(args, *filter.VenueID)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM booking_inquiries "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count inquiries: %w", err)
	}

	n := len(args)
	query := fmt.Sprintf(`
		SELECT %s FROM booking_inquiries %s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d`, inquiryColumns, where, n+1, n+2)

	inquiries := []*BookingInquiry{}
	if err := r.db.SelectContext(ctx, &inquiries, query, append(args, limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("list inquiries: %w", err)
	}
	for _, b := range inquiries {
		normalizeDates(b)
	}

	return inquiries, total, nil
}

type txRepository struct {
	tx *sqlx.Tx
}

// FindOverlapping returns one inquiry of venueID whose inclusive range intersects [start, end], or nil.
func (r *txRepository) FindOverlapping(ctx context.Context, venueID uuid.UUID, start, end time.Time) (*BookingInquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var b BookingInquiry
	err := r.tx.GetContext(ctx, &b, `
		SELECT `+inquiryColumns+` FROM booking_inquiries
		WHERE venue_id = $1
		  AND start_date <= $3::date
		  AND end_date >= $2::date
		ORDER BY start_date
		LIMIT 1`,
		venueID, start.Format(validator.DateLayout), end.Format(validator.DateLayout),
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find overlapping inquiry: %w", err)
	}
	normalizeDates(&b)
	return &b, nil
}

func (r *txRepository) Create(ctx context.Context, b *BookingInquiry) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.tx.ExecContext(ctx, `
		INSERT INTO booking_inquiries (
			id, venue_id, company_name, email, start_date, end_date,
			attendee_count, created_at, version
		) VALUES ($1, $2, $3, $4, $5::date, $6::date, $7, $8, $9)`,
		b.ID, b.VenueID, b.CompanyName, b.Email,
		b.StartDate.Format(validator.DateLayout), b.EndDate.Format(validator.DateLayout),
		b.AttendeeCount, b.CreatedAt, b.Version,
	)
	if err != nil {
		return mapPQError(fmt.Errorf("insert inquiry: %w", err))
	}
	return nil
}

// mapPQError translates constraint violations into domain errors.
func mapPQError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case "23P01": // exclusion_violation
		return fmt.Errorf("%w: %w", ErrDateConflict, err)
	case "23503": // foreign_key_violation
		return fmt.Errorf("%w: %w", ErrVenueNotFound, err)
	case "23514": // check_violation
		if pqErr.Constraint == constraintDateRange {
			return fmt.Errorf("%w: %w", ErrInvalidDateRange, err)
		}
	}
	return err
}

// normalizeDates pins DATE columns to midnight UTC regardless of driver location.
func normalizeDates(b *BookingInquiry) {
	b.StartDate = dateOnly(b.StartDate)
	b.EndDate = dateOnly(b.EndDate)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
