// Package entity defines the domain entities for the offers feature.
package entity

import (
	"time"

	"market_backend/internal/shared/asset"
)

// Offer is a single marketplace listing. It is immutable once published.
type Offer struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Details     Details
	Image       *asset.Descriptor
	OwnerID     string
	// Owner is resolved at read time from OwnerID and is never persisted with the offer.
	Owner     *Owner
	CreatedAt time.Time
}

// Owner is the public profile of the user who published an offer.
// Newsletter is only set when the owner is fully resolved.
type Owner struct {
	ID         string
	Username   string
	Avatar     *asset.Descriptor
	Newsletter *bool
}
