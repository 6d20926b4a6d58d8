// Package entity defines the domain entities for the auth feature.
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"market_backend/internal/shared/asset"
)

// User represents a registered account.
// Salt, Hash and Token are generated together when the account is created and never change afterwards.
type User struct {
	// ID is the store-assigned identifier.
	ID string `gorm:"primaryKey;size:36"`

	// Email must be unique across all users. Uniqueness is enforced by the index,
	// not by a lookup before insert.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Username is the public display name (account.username).
	Username string `gorm:"size:255;not null"`

	// Avatar is the optional asset descriptor of the profile picture (account.avatar).
	Avatar *asset.Descriptor `gorm:"serializer:json;type:text"`

	Newsletter bool `gorm:"not null;default:false"`

	// Salt is the per-account random value mixed into the password digest.
	Salt string `gorm:"size:64;not null"`

	// Hash is the digest of password+salt. It never holds the plaintext password.
	Hash string `gorm:"size:255;not null"`

	// Token is the bearer credential for the lifetime of the account.
	Token string `gorm:"uniqueIndex;size:64;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate assigns the identifier when the caller did not.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
