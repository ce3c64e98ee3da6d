package venue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

type fakeRepository struct {
	venues    []*Venue
	listCalls int
	listErr   error
}

func (f *fakeRepository) matching(filter Filter) []*Venue {
	var out []*Venue
	for _, v := range f.venues {
		if filter.City != nil && v.City != *filter.City {
			continue
		}
		if filter.MinCapacity != nil && v.Capacity < *filter.MinCapacity {
			continue
		}
		if filter.MaxPrice != nil && v.PricePerNight > *filter.MaxPrice {
			continue
		}
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (f *fakeRepository) List(_ context.Context, filter Filter, limit, offset int) ([]*Venue, int, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	all := f.matching(filter)
	if offset >= len(all) {
		return []*Venue{}, len(all), nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], len(all), nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*Venue, error) {
	for _, v := range f.venues {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeRepository) DistinctCities(_ context.Context) ([]string, error) {
	out := make([]string, 0, len(f.venues))
	for _, v := range f.venues {
		out = append(out, v.City)
	}
	return out, nil
}

func (f *fakeRepository) CreateIfNotExists(_ context.Context, v *Venue) (bool, error) {
	for _, existing := range f.venues {
		if existing.Name == v.Name && existing.City == v.City {
			return false, nil
		}
	}
	f.venues = append(f.venues, v)
	return true, nil
}

type fakeCache struct {
	data    map[string][]byte
	failGet bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, dst interface{}) (bool, error) {
	if c.failGet {
		return false, errors.New("cache unavailable")
	}
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

// seededVenues builds n venues, venue 0 being the newest.
func seededVenues(n int) []*Venue {
	base := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	cities := []string{"Denver", "Boston", "Austin"}
	venues := make([]*Venue, 0, n)
	for i := 0; i < n; i++ {
		venues = append(venues, &Venue{
			ID:            uuid.New(),
			Name:          fmt.Sprintf("Venue %02d", i),
			City:          cities[i%len(cities)],
			Country:       "USA",
			Address:       fmt.Sprintf("%d Main Street", i+1),
			Capacity:      10 * (i + 1),
			PricePerNight: float64(1000 + 100*i),
			Amenities:     []string{"WiFi"},
			CreatedAt:     base.Add(-time.Duration(i) * time.Hour),
			UpdatedAt:     base.Add(-time.Duration(i) * time.Hour),
		})
	}
	return venues
}
