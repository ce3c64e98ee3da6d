package venue

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/venuehub/venuehub-api/internal/pkg/logger"
	"github.com/venuehub/venuehub-api/internal/pkg/storage"
	"github.com/venuehub/venuehub-api/internal/pkg/validator"
)

//go:embed catalog/default_venues.json
var defaultCatalog embed.FS

// CatalogEntry is one venue in a seed catalog file.
type CatalogEntry struct {
	Name          string   `json:"name" validate:"required,notblank,max=255"`
	City          string   `json:"city" validate:"required,notblank,max=255"`
	Country       string   `json:"country" validate:"required,notblank"`
	Address       string   `json:"address" validate:"required,notblank"`
	Capacity      int      `json:"capacity" validate:"gte=1"`
	PricePerNight float64  `json:"pricePerNight" validate:"gte=0"`
	Description   string   `json:"description"`
	Amenities     []string `json:"amenities" validate:"dive,notblank"`
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() ([]CatalogEntry, error) {
	f, err := defaultCatalog.Open("catalog/default_venues.json")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeCatalog(f)
}

// DecodeCatalog reads a JSON array of catalog entries and validates each one.
func DecodeCatalog(r io.Reader) ([]CatalogEntry, error) {
	var entries []CatalogEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	for i := range entries {
		if errs := validator.Validate(&entries[i]); errs != nil {
			return nil, fmt.Errorf("%w: entry %d (%s): %v", ErrInvalidCatalog, i, entries[i].Name, errs)
		}
	}
	return entries, nil
}

// LoadCatalog reads and decodes the catalog stored under key.
func LoadCatalog(ctx context.Context, src storage.ObjectReader, key string) ([]CatalogEntry, error) {
	body, err := src.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", key, err)
	}
	defer body.Close()
	return DecodeCatalog(body)
}

// Seed inserts catalog entries that are not present yet, keyed by name and city.
// Entries are inserted in reverse order with increasing timestamps so the first
// entry of the file is listed first.
func Seed(ctx context.Context, repo Repository, entries []CatalogEntry) (int, error) {
	base := time.Now().UTC()
	inserted := 0

	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		ts := base.Add(time.Duration(len(entries)-1-i) * time.Millisecond)
		amenities := e.Amenities
		if amenities == nil {
			amenities = []string{}
		}

		ok, err := repo.CreateIfNotExists(ctx, &Venue{
			ID:            uuid.New(),
			Name:          e.Name,
			City:          e.City,
			Country:       e.Country,
			Address:       e.Address,
			Capacity:      e.Capacity,
			PricePerNight: e.PricePerNight,
			Description:   e.Description,
			Amenities:     amenities,
			CreatedAt:     ts,
			UpdatedAt:     ts,
		})
		if err != nil {
			return inserted, err
		}
		if ok {
			inserted++
		} else {
			logger.LogDebug(ctx, "Venue already present", "name", e.Name, "city", e.City)
		}
	}

	return inserted, nil
}
