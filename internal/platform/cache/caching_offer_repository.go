// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"market_backend/internal/feature/offers/domain/entity"
	"market_backend/internal/feature/offers/usecase"
)

// CachingOfferRepository decorates an OfferRepository with Redis caching.
// Offers never change once stored, so detail entries live until their TTL
// while list pages are dropped whenever a new offer is created.
type CachingOfferRepository struct {
	inner     usecase.OfferRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.OfferRepository = (*CachingOfferRepository)(nil)

// NewCachingOfferRepository decorates an OfferRepository with Redis caching.
// If ttl is 0, it defaults to 1 minute. If namespace is empty, it uses "offers".
func NewCachingOfferRepository(rdb *redis.Client, ttl time.Duration, inner usecase.OfferRepository, namespace string) *CachingOfferRepository {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if namespace == "" {
		namespace = "offers"
	}
	return &CachingOfferRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create stores the offer and invalidates every cached list page.
// A List that read the database before the insert may store its page after
// the invalidation; that page stays stale until its TTL expires.
func (c *CachingOfferRepository) Create(ctx context.Context, offer *entity.Offer) error {
	if err := c.inner.Create(ctx, offer); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	// Best effort: a stale page expires with its TTL.
	if err := c.deleteByPattern(ctx, c.listPrefix()+"*"); err != nil {
		logrus.WithFields(logrus.Fields{"error": err}).Warn("offer list cache invalidation failed")
	}
	return nil
}

// List returns a cached page when present, otherwise queries the inner repository.
func (c *CachingOfferRepository) List(ctx context.Context, q entity.ListQuery) ([]entity.Offer, error) {
	if c.rdb == nil {
		return c.inner.List(ctx, q)
	}
	key := c.listKey(q)

	var out []entity.Offer
	if c.load(ctx, key, &out) {
		return out, nil
	}
	out, err := c.inner.List(ctx, q)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, out)
	return out, nil
}

// FindByID returns a cached offer when present. Misses are not cached.
func (c *CachingOfferRepository) FindByID(ctx context.Context, id string) (*entity.Offer, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}
	key := c.idKey(id)

	var cached entity.Offer
	if c.load(ctx, key, &cached) {
		return &cached, nil
	}
	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, out)
	return out, nil
}

// load reports whether key held a decodable value. Corrupted entries are deleted.
func (c *CachingOfferRepository) load(ctx context.Context, key string, dst any) bool {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil || len(b) == 0 {
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

func (c *CachingOfferRepository) store(ctx context.Context, key string, v any) {
	if b, err := json.Marshal(v); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
}

func (c *CachingOfferRepository) idKey(id string) string {
	return fmt.Sprintf("%s:id:%s", c.namespace, url.QueryEscape(id))
}

func (c *CachingOfferRepository) listPrefix() string {
	return c.namespace + ":list:"
}

// listKey encodes every criterion so that distinct queries never share a key.
func (c *CachingOfferRepository) listKey(q entity.ListQuery) string {
	return fmt.Sprintf("%stitle=%s:min=%s:max=%s:sort=%s:page=%d",
		c.listPrefix(),
		url.QueryEscape(q.Title),
		bound(q.PriceMin),
		bound(q.PriceMax),
		q.Sort,
		q.Skip()/entity.PageSize+1,
	)
}

func bound(f *float64) string {
	if f == nil {
		return "-"
	}
	return strconv.FormatFloat(*f, 'g', -1, 64)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingOfferRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
