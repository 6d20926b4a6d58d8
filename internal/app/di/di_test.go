package di

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"market_backend/internal/config"
	"market_backend/internal/platform/cache"
)

func TestNewOfferRepository(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	t.Run("without redis", func(t *testing.T) {
		repo := NewOfferRepository(db, nil, time.Minute)

		_, cached := repo.(*cache.CachingOfferRepository)
		assert.False(t, cached)
	})

	t.Run("with redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = rdb.Close() })

		repo := NewOfferRepository(db, rdb, time.Minute)

		_, cached := repo.(*cache.CachingOfferRepository)
		assert.True(t, cached)
	})
}

func TestNewAssetStore(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "AKID")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "SECRET")
	t.Setenv("AWS_CONFIG_FILE", "/nonexistent")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/nonexistent")

	var cfg config.Config
	cfg.Storage.Bucket = "pictures"
	cfg.Storage.Region = "eu-west-3"
	cfg.Storage.Endpoint = "http://localhost:9000"

	store, err := NewAssetStore(context.Background(), cfg)

	require.NoError(t, err)
	assert.NotNil(t, store)
}

func TestNewPaymentGateway(t *testing.T) {
	var cfg config.Config
	cfg.Stripe.SecretKey = "sk_test"
	cfg.Stripe.Timeout = time.Second

	assert.NotNil(t, NewPaymentGateway(cfg))
}
