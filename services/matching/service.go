package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"snabbit/database/catalog"
	"snabbit/models"
)

// MatchingService matches catalog helpers against a selected service.
type MatchingService interface {
	MatchHelpers(serviceID int, sortKey SortKey) ([]models.HelperProfile, error)
}

// DefaultMatchingService runs SelectHelpers over the catalog and caches the
// ranked result in Redis for a short TTL, since the catalog never changes at
// runtime.
type DefaultMatchingService struct {
	Services    catalog.ServiceRepository
	Helpers     catalog.HelperRepository
	CacheClient *redis.Client
	CacheTTL    time.Duration
}

// MatchHelpers retrieves the ordered eligible helpers for the given service.
// An unknown service is an error; an empty eligible set is not.
func (s *DefaultMatchingService) MatchHelpers(serviceID int, sortKey SortKey) ([]models.HelperProfile, error) {
	service, err := s.Services.GetByID(serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve service: %w", err)
	}

	ctx := context.Background()
	cacheKey := fmt.Sprintf("match:%d:%s", serviceID, sortKey)

	if s.CacheClient != nil {
		cached, err := s.CacheClient.Get(ctx, cacheKey).Result()
		if err == nil && cached != "" {
			var helpers []models.HelperProfile
			if err := json.Unmarshal([]byte(cached), &helpers); err == nil {
				return helpers, nil
			}
			// If unmarshal fails, we fall through to re-computation.
		}
	}

	matched := SelectHelpers(s.Helpers.GetAll(), service, sortKey)

	if s.CacheClient != nil {
		ttl := s.CacheTTL
		if ttl == 0 {
			ttl = 5 * time.Minute
		}
		if data, err := json.Marshal(matched); err == nil {
			s.CacheClient.Set(ctx, cacheKey, data, ttl)
		}
	}

	return matched, nil
}
