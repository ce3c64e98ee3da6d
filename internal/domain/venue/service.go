package venue

import (
	"context"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/venuehub/venuehub-api/internal/pkg/logger"
	"github.com/venuehub/venuehub-api/internal/pkg/pagination"
)

const citiesCacheKey = "cities"

// Cache is a JSON read-through store. Implementations may be disabled.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}) error
}

// ListResult is one catalog page.
type ListResult struct {
	Venues []*Venue
	Meta   pagination.Meta
}

type cachedPage struct {
	Venues []*Venue `json:"venues"`
	Total  int      `json:"total"`
}

// Service handles venue catalog queries
type Service struct {
	repo  Repository
	cache Cache
}

// NewService creates venue service. cache may be nil.
func NewService(repo Repository, cache Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// List returns the venues matching filter on the requested page.
func (s *Service) List(ctx context.Context, filter Filter, page pagination.Params) (*ListResult, error) {
	key := "list:" + filter.cacheKey() + "&" + pageKey(page)

	var cached cachedPage
	if s.cacheGet(ctx, key, &cached) {
		return &ListResult{Venues: cached.Venues, Meta: pagination.NewMeta(page, cached.Total)}, nil
	}

	venues, total, err := s.repo.List(ctx, filter, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}

	logger.LogDebug(ctx, "Venues fetched",
		"filter", filter.cacheKey(),
		"page", page.Page,
		"count", len(venues),
		"total", total,
	)

	s.cacheSet(ctx, key, cachedPage{Venues: venues, Total: total})
	return &ListResult{Venues: venues, Meta: pagination.NewMeta(page, total)}, nil
}

// Cities returns the distinct non-empty cities in ascending order.
func (s *Service) Cities(ctx context.Context) ([]string, error) {
	var cached []string
	if s.cacheGet(ctx, citiesCacheKey, &cached) {
		return cached, nil
	}

	raw, err := s.repo.DistinctCities(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(raw))
	cities := make([]string, 0, len(raw))
	for _, c := range raw {
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		cities = append(cities, c)
	}
	sort.Strings(cities)

	s.cacheSet(ctx, citiesCacheKey, cities)
	return cities, nil
}

// GetByID returns the venue or ErrVenueNotFound.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrVenueNotFound
	}
	return v, nil
}

func (s *Service) cacheGet(ctx context.Context, key string, dst interface{}) bool {
	if s.cache == nil {
		return false
	}
	found, err := s.cache.GetJSON(ctx, key, dst)
	if err != nil {
		logger.LogWarn(ctx, "Venue cache read failed", "key", key, "error", err.Error())
		return false
	}
	return found
}

func (s *Service) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, value); err != nil {
		logger.LogWarn(ctx, "Venue cache write failed", "key", key, "error", err.Error())
	}
}

func pageKey(p pagination.Params) string {
	return "page=" + strconv.Itoa(p.Page) + "&limit=" + strconv.Itoa(p.Limit)
}
