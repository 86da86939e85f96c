package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tripmate/internal/domain"
)

type SearchService struct {
	client   domain.HotelSearchClient
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewSearchService(c domain.HotelSearchClient, cache domain.Cache, ttl time.Duration) *SearchService {
	return &SearchService{client: c, cache: cache, cacheTTL: ttl}
}

// ByCoordinates proxies the upstream search, serving repeat queries
// from the cache. The upstream body is passed through untouched.
func (s *SearchService) ByCoordinates(ctx context.Context, q domain.HotelSearchQuery) (json.RawMessage, error) {
	key := searchKey(q)
	var cached json.RawMessage
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}

	out, err := s.client.SearchByCoordinates(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w: hotel search: %v", domain.ErrUpstream, err)
	}

	// size guard
	if len(out) < 1_000_000 {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}

func searchKey(q domain.HotelSearchQuery) string {
	return fmt.Sprintf("hotels:%g:%g:%s:%s:%d:%s:%d:%s:%d:%s:%s:%s",
		q.Latitude, q.Longitude, q.ArrivalDate, q.DepartureDate,
		q.Adults, q.ChildrenAge, q.RoomQty, q.Units, q.PageNumber,
		q.TemperatureUnit, q.LanguageCode, q.CurrencyCode)
}
