package venue

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var venueRowColumns = []string{
	"id", "name", "city", "country", "address", "capacity", "price_per_night",
	"description", "amenities", "created_at", "updated_at",
}

func newMockRepository(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRepository(sqlx.NewDb(db, "postgres")), mock
}

func TestRepositoryListBuildsFilteredQuery(t *testing.T) {
	repo, mock := newMockRepository(t)
	id := uuid.New()
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM venues WHERE city = $1 AND capacity >= $2 AND price_per_night <= $3`)).
		WithArgs("Denver", 40, 3500.0).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))
	mock.ExpectQuery(`FROM venues WHERE city = \$1 AND capacity >= \$2 AND price_per_night <= \$3 ORDER BY created_at DESC, id DESC LIMIT \$4 OFFSET \$5`).
		WithArgs("Denver", 40, 3500.0, 10, 10).
		WillReturnRows(sqlmock.NewRows(venueRowColumns).
			AddRow(id.String(), "Mountain Vista Lodge", "Denver", "USA", "1 Peak Road", 50, 3500.0,
				"Lodge", "{WiFi,Hiking}", now, now))

	filter := Filter{City: strPtr("Denver"), MinCapacity: intPtr(40), MaxPrice: floatPtr(3500)}
	venues, total, err := repo.List(context.Background(), filter, 10, 10)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if total != 11 {
		t.Fatalf("expected total 11, got %d", total)
	}
	if len(venues) != 1 || venues[0].ID != id {
		t.Fatalf("unexpected venues %+v", venues)
	}
	if len(venues[0].Amenities) != 2 || venues[0].Amenities[1] != "Hiking" {
		t.Fatalf("expected amenities to be scanned, got %v", venues[0].Amenities)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRepositoryListWithoutFilter(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`^SELECT COUNT\(\*\) FROM venues$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`FROM venues ORDER BY created_at DESC, id DESC LIMIT \$1 OFFSET \$2`).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(venueRowColumns))

	venues, total, err := repo.List(context.Background(), Filter{}, 10, 0)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if total != 0 || venues == nil || len(venues) != 0 {
		t.Fatalf("expected empty non-nil page, got %v (total %d)", venues, total)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRepositoryGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)
	id := uuid.New()

	mock.ExpectQuery(`FROM venues WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(venueRowColumns))

	v, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if v != nil {
		t.Fatalf("expected nil venue, got %+v", v)
	}
}

func TestRepositoryDistinctCities(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT DISTINCT city FROM venues WHERE city <> '' ORDER BY city`).
		WillReturnRows(sqlmock.NewRows([]string{"city"}).AddRow("Austin").AddRow("Boston"))

	cities, err := repo.DistinctCities(context.Background())
	if err != nil {
		t.Fatalf("DistinctCities returned error: %v", err)
	}
	if len(cities) != 2 || cities[0] != "Austin" {
		t.Fatalf("unexpected cities %v", cities)
	}
}

func TestRepositoryCreateIfNotExists(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Now().UTC()
	v := &Venue{
		ID: uuid.New(), Name: "Vineyard Estate", City: "Napa", Country: "USA", Address: "1 Vine Rd",
		Capacity: 45, PricePerNight: 6000, Amenities: []string{"WiFi"}, CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectExec(`INSERT INTO venues .* ON CONFLICT \(name, city\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO venues`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	inserted, err := repo.CreateIfNotExists(context.Background(), v)
	if err != nil || !inserted {
		t.Fatalf("expected insert, got inserted=%v err=%v", inserted, err)
	}
	inserted, err = repo.CreateIfNotExists(context.Background(), v)
	if err != nil || inserted {
		t.Fatalf("expected duplicate to be skipped, got inserted=%v err=%v", inserted, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
