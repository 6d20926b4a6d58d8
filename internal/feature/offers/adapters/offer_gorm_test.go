package adapters

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "market_backend/internal/feature/auth/domain/entity"
	"market_backend/internal/feature/offers/domain/entity"
	"market_backend/internal/feature/offers/usecase"
	"market_backend/internal/shared/asset"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&authentity.User{}, &OfferModel{}), "failed to migrate tables")
	return db
}

var baseTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// seedOffer creates an offer whose creation time is baseTime plus seq minutes.
func seedOffer(t *testing.T, repo *offerGorm, name string, price float64, seq int) *entity.Offer {
	t.Helper()

	o := &entity.Offer{
		Name:      name,
		Price:     price,
		Details:   entity.NewDetails("brand", "M", "new", "red", "Paris"),
		OwnerID:   "u-1",
		CreatedAt: baseTime.Add(time.Duration(seq) * time.Minute),
	}
	require.NoError(t, repo.Create(context.Background(), o), "failed to seed offer")
	return o
}

func names(offers []entity.Offer) []string {
	out := make([]string, 0, len(offers))
	for _, o := range offers {
		out = append(out, o.Name)
	}
	return out
}

func ptr(f float64) *float64 { return &f }

func TestNewOfferRepository(t *testing.T) {
	db := setupTestDB(t)

	repo := NewOfferRepository(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestOfferGorm_Create(t *testing.T) {
	t.Run("success: fields round trip", func(t *testing.T) {
		repo := NewOfferRepository(setupTestDB(t))
		image := &asset.Descriptor{ID: "a-1", URL: "https://cdn/a-1.png", ContentType: "image/png", Bytes: 42}
		o := &entity.Offer{
			Name:        "Red shirt",
			Description: "barely worn",
			Price:       15.5,
			Details:     entity.NewDetails("Zara", "M", "good", "red", "Paris"),
			Image:       image,
			OwnerID:     "u-1",
		}

		require.NoError(t, repo.Create(context.Background(), o))
		assert.NotEmpty(t, o.ID, "ID is not set")
		assert.False(t, o.CreatedAt.IsZero(), "CreatedAt is not set")

		got, err := repo.FindByID(context.Background(), o.ID)
		require.NoError(t, err)
		assert.Equal(t, "Red shirt", got.Name)
		assert.Equal(t, "barely worn", got.Description)
		assert.Equal(t, 15.5, got.Price)
		assert.Equal(t, o.Details, got.Details)
		assert.Equal(t, "Zara", got.Details.Get(entity.DetailBrand))
		require.NotNil(t, got.Image)
		assert.Equal(t, *image, *got.Image)
		assert.Equal(t, "u-1", got.OwnerID)
	})

	t.Run("success: offer without image", func(t *testing.T) {
		repo := NewOfferRepository(setupTestDB(t))
		o := seedOffer(t, repo, "Hat", 3, 0)

		got, err := repo.FindByID(context.Background(), o.ID)

		require.NoError(t, err)
		assert.Nil(t, got.Image)
	})

	t.Run("failure: nil offer", func(t *testing.T) {
		repo := NewOfferRepository(setupTestDB(t))

		assert.Error(t, repo.Create(context.Background(), nil))
	})
}

func TestOfferGorm_FindByID(t *testing.T) {
	repo := NewOfferRepository(setupTestDB(t))
	seedOffer(t, repo, "Hat", 3, 0)

	tests := []struct {
		name string
		id   string
	}{
		{"unknown well formed id", "5f0c7a52-3c55-4c43-9a0e-3ac5a1f1a111"},
		{"malformed id", "not-an-id"},
		{"empty id", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.FindByID(context.Background(), tt.id)

			assert.ErrorIs(t, err, usecase.ErrOfferNotFound)
		})
	}
}

func TestOfferGorm_List(t *testing.T) {
	repo := NewOfferRepository(setupTestDB(t))
	seedOffer(t, repo, "Blue Shirt", 20, 0)
	seedOffer(t, repo, "red shirt", 10, 1)
	seedOffer(t, repo, "Jeans", 30, 2)
	seedOffer(t, repo, "Shirt 100%", 10, 3)
	seedOffer(t, repo, "Shirt_X", 5, 4)

	tests := []struct {
		name string
		q    entity.ListQuery
		want []string
	}{
		{
			name: "no criteria keeps creation order",
			q:    entity.ListQuery{},
			want: []string{"Blue Shirt", "red shirt", "Jeans", "Shirt 100%", "Shirt_X"},
		},
		{
			name: "title is a case-insensitive substring",
			q:    entity.ListQuery{Title: "SHIRT"},
			want: []string{"Blue Shirt", "red shirt", "Shirt 100%", "Shirt_X"},
		},
		{
			name: "percent in title matches literally",
			q:    entity.ListQuery{Title: "100%"},
			want: []string{"Shirt 100%"},
		},
		{
			name: "underscore in title matches literally",
			q:    entity.ListQuery{Title: "t_x"},
			want: []string{"Shirt_X"},
		},
		{
			name: "min and max both apply",
			q:    entity.ListQuery{PriceMin: ptr(10), PriceMax: ptr(20)},
			want: []string{"Blue Shirt", "red shirt", "Shirt 100%"},
		},
		{
			name: "only max",
			q:    entity.ListQuery{PriceMax: ptr(9.99)},
			want: []string{"Shirt_X"},
		},
		{
			name: "min above max yields nothing",
			q:    entity.ListQuery{PriceMin: ptr(25), PriceMax: ptr(15)},
			want: []string{},
		},
		{
			name: "price ascending keeps ties in creation order",
			q:    entity.ListQuery{Sort: entity.SortPriceAsc},
			want: []string{"Shirt_X", "red shirt", "Shirt 100%", "Blue Shirt", "Jeans"},
		},
		{
			name: "price descending keeps ties in creation order",
			q:    entity.ListQuery{Sort: entity.SortPriceDesc},
			want: []string{"Jeans", "Blue Shirt", "red shirt", "Shirt 100%", "Shirt_X"},
		},
		{
			name: "filters and sort combine",
			q:    entity.ListQuery{Title: "shirt", PriceMax: ptr(10), Sort: entity.SortPriceDesc},
			want: []string{"red shirt", "Shirt 100%", "Shirt_X"},
		},
		{
			name: "page beyond the last is empty",
			q:    entity.ListQuery{Page: 2},
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(context.Background(), tt.q)

			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestOfferGorm_List_NonASCIITitle(t *testing.T) {
	repo := NewOfferRepository(setupTestDB(t))
	seedOffer(t, repo, "ÉTÉ robe", 15, 0)
	seedOffer(t, repo, "Manteau d'hiver", 40, 1)

	tests := []struct {
		name  string
		title string
		want  []string
	}{
		{name: "exact accented case", title: "ÉTÉ", want: []string{"ÉTÉ robe"}},
		{name: "accents kept, ascii part folded", title: "ÉTÉ ROBE", want: []string{"ÉTÉ robe"}},
		{name: "ascii substring", title: "ROBE", want: []string{"ÉTÉ robe"}},
		{name: "apostrophe", title: "d'hiver", want: []string{"Manteau d'hiver"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(context.Background(), entity.ListQuery{Title: tt.title})

			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestOfferGorm_List_Pagination(t *testing.T) {
	repo := NewOfferRepository(setupTestDB(t))
	for i := 0; i < 23; i++ {
		seedOffer(t, repo, fmt.Sprintf("item-%02d", i), float64(i), i)
	}

	tests := []struct {
		page      int
		wantLen   int
		wantFirst string
	}{
		{page: 0, wantLen: 10, wantFirst: "item-00"},
		{page: 1, wantLen: 10, wantFirst: "item-00"},
		{page: 2, wantLen: 10, wantFirst: "item-10"},
		{page: 3, wantLen: 3, wantFirst: "item-20"},
		{page: 4, wantLen: 0},
		{page: 1e17, wantLen: 0},
		{page: math.MaxInt, wantLen: 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("page %d", tt.page), func(t *testing.T) {
			got, err := repo.List(context.Background(), entity.ListQuery{Page: tt.page})

			require.NoError(t, err)
			require.Len(t, got, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, got[0].Name)
			}
		})
	}
}
