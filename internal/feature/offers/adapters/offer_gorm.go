// Package adapters provides repository implementations for the offers feature.
package adapters

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"market_backend/internal/feature/offers/domain/entity"
	"market_backend/internal/feature/offers/usecase"
	"market_backend/internal/shared/asset"
)

// OfferModel is the stored form of an offer. Owner is kept as a reference only.
type OfferModel struct {
	ID                 string            `gorm:"primaryKey;size:36"`
	ProductName        string            `gorm:"size:255;not null"`
	ProductDescription string            `gorm:"type:text"`
	ProductPrice       float64           `gorm:"not null;index"`
	ProductDetails     entity.Details    `gorm:"serializer:json;type:text;not null"`
	ProductImage       *asset.Descriptor `gorm:"serializer:json;type:text"`
	OwnerID            string            `gorm:"size:36;not null;index"`
	CreatedAt          time.Time         `gorm:"index"`
}

func (OfferModel) TableName() string {
	return "offers"
}

// BeforeCreate assigns the identifier when the caller did not.
func (m *OfferModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func toModel(e *entity.Offer) OfferModel {
	return OfferModel{
		ID:                 e.ID,
		ProductName:        e.Name,
		ProductDescription: e.Description,
		ProductPrice:       e.Price,
		ProductDetails:     e.Details,
		ProductImage:       e.Image,
		OwnerID:            e.OwnerID,
		CreatedAt:          e.CreatedAt,
	}
}

func toEntity(m OfferModel) entity.Offer {
	return entity.Offer{
		ID:          m.ID,
		Name:        m.ProductName,
		Description: m.ProductDescription,
		Price:       m.ProductPrice,
		Details:     m.ProductDetails,
		Image:       m.ProductImage,
		OwnerID:     m.OwnerID,
		CreatedAt:   m.CreatedAt,
	}
}

type offerGorm struct {
	db *gorm.DB
}

var _ usecase.OfferRepository = (*offerGorm)(nil)

func NewOfferRepository(db *gorm.DB) *offerGorm {
	return &offerGorm{db: db}
}

// Create inserts the offer and copies the generated fields back onto it.
func (r *offerGorm) Create(ctx context.Context, offer *entity.Offer) error {
	if offer == nil {
		return errors.New("offer is nil")
	}
	m := toModel(offer)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	offer.ID = m.ID
	offer.CreatedAt = m.CreatedAt
	return nil
}

// List applies the title and price filters, orders the result and returns one page.
// Offers with equal sort keys keep their creation order.
func (r *offerGorm) List(ctx context.Context, q entity.ListQuery) ([]entity.Offer, error) {
	tx := r.db.WithContext(ctx).Model(&OfferModel{})
	if q.Title != "" {
		// Both sides fold through the database's LOWER. SQLite folds ASCII only,
		// so accented letters there match case-sensitively.
		tx = tx.Where(`LOWER(product_name) LIKE LOWER(?) ESCAPE '\'`, "%"+escapeLike(q.Title)+"%")
	}
	if q.PriceMin != nil {
		tx = tx.Where("product_price >= ?", *q.PriceMin)
	}
	if q.PriceMax != nil {
		tx = tx.Where("product_price <= ?", *q.PriceMax)
	}
	switch q.Sort {
	case entity.SortPriceAsc:
		tx = tx.Order("product_price ASC")
	case entity.SortPriceDesc:
		tx = tx.Order("product_price DESC")
	}
	tx = tx.Order("created_at ASC").Order("id ASC")

	var rows []OfferModel
	if err := tx.Offset(q.Skip()).Limit(entity.PageSize).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Offer, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

// FindByID returns usecase.ErrOfferNotFound for unknown or malformed identifiers.
func (r *offerGorm) FindByID(ctx context.Context, id string) (*entity.Offer, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, usecase.ErrOfferNotFound
	}
	var m OfferModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrOfferNotFound
		}
		return nil, err
	}
	e := toEntity(m)
	return &e, nil
}

// escapeLike makes s match literally inside a LIKE pattern using '\' as escape.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
