package venue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const queryTimeout = 3 * time.Second

const venueColumns = `id, name, city, country, address, capacity, price_per_night,
	description, amenities, created_at, updated_at`

// Repository defines venue data access interface
type Repository interface {
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Venue, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Venue, error)
	DistinctCities(ctx context.Context) ([]string, error)
	CreateIfNotExists(ctx context.Context, v *Venue) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates venue repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// List returns one page of venues matching filter, newest first, and the total match count.
func (r *repository) List(ctx context.Context, filter Filter, limit, offset int) ([]*Venue, int, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	where, args := whereClause(filter.clauses())

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM venues "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count venues: %w", err)
	}

	n := len(args)
	query := fmt.Sprintf(`
		SELECT %s FROM venues %s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d`, venueColumns, where, n+1, n+2)

	venues := []*Venue{}
	if err := r.db.SelectContext(ctx, &venues, query, append(args, limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("list venues: %w", err)
	}

	return venues, total, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var v Venue
	err := r.db.GetContext(ctx, &v, `SELECT `+venueColumns+` FROM venues WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}
	return &v, nil
}

func (r *repository) DistinctCities(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cities := []string{}
	err := r.db.SelectContext(ctx, &cities, `
		SELECT DISTINCT city FROM venues
		WHERE city <> ''
		ORDER BY city`)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	return cities, nil
}

// CreateIfNotExists inserts v unless a venue with the same name and city exists.
// Reports whether a row was inserted.
func (r *repository) CreateIfNotExists(ctx context.Context, v *Venue) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO venues (
			id, name, city, country, address, capacity, price_per_night,
			description, amenities, created_at, updated_at
		) VALUES (
			:id, :name, :city, :country, :address, :capacity, :price_per_night,
			:description, :amenities, :created_at, :updated_at
		)
		ON CONFLICT (name, city) DO NOTHING`, v)
	if err != nil {
		return false, fmt.Errorf("insert venue %q: %w", v.Name, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
