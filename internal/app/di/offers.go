// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	offeradapters "market_backend/internal/feature/offers/adapters"
	"market_backend/internal/feature/offers/usecase"
	"market_backend/internal/platform/cache"
)

// NewOfferRepository creates an OfferRepository implementation.
// If Redis is available, reads are served through the cache.
// Otherwise, it queries the database directly.
func NewOfferRepository(db *gorm.DB, rdb *redis.Client, ttl time.Duration) usecase.OfferRepository {
	repo := offeradapters.NewOfferRepository(db)
	if rdb != nil {
		return cache.NewCachingOfferRepository(rdb, ttl, repo, "offers")
	}
	return repo
}
