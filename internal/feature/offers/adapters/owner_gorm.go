package adapters

import (
	"context"

	"gorm.io/gorm"

	"market_backend/internal/feature/offers/domain/entity"
	"market_backend/internal/feature/offers/usecase"
	"market_backend/internal/shared/asset"
)

// ownerRow is the public projection of the users table.
// Credential columns are never selected.
type ownerRow struct {
	ID         string
	Username   string
	Avatar     *asset.Descriptor `gorm:"serializer:json"`
	Newsletter bool
}

func (ownerRow) TableName() string {
	return "users"
}

type ownerGorm struct {
	db *gorm.DB
}

var _ usecase.OwnerDirectory = (*ownerGorm)(nil)

// NewOwnerDirectory reads owner profiles from the users table.
func NewOwnerDirectory(db *gorm.DB) *ownerGorm {
	return &ownerGorm{db: db}
}

// FindOwners loads every requested profile in one query. Unknown ids are absent from the result.
func (r *ownerGorm) FindOwners(ctx context.Context, ids []string, full bool) (map[string]entity.Owner, error) {
	out := make(map[string]entity.Owner, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	columns := []string{"id", "username", "avatar"}
	if full {
		columns = append(columns, "newsletter")
	}
	var rows []ownerRow
	if err := r.db.WithContext(ctx).Select(columns).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		owner := entity.Owner{ID: row.ID, Username: row.Username, Avatar: row.Avatar}
		if full {
			newsletter := row.Newsletter
			owner.Newsletter = &newsletter
		}
		out[row.ID] = owner
	}
	return out, nil
}
