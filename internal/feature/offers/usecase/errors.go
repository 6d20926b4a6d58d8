// Package usecase implements the offer query engine and the publish path.
package usecase

import "errors"

var (
	// ErrOfferNotFound is returned when no offer has the requested identifier,
	// including identifiers that are not well formed.
	ErrOfferNotFound = errors.New("offer not found")

	// ErrInvalidOffer is returned when a publish request lacks a title or a
	// usable price, or carries an unusable picture.
	ErrInvalidOffer = errors.New("invalid offer")

	// ErrInvalidQuery is returned for list criteria that cannot be applied.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrAssetUpload wraps failures of the asset store.
	ErrAssetUpload = errors.New("asset upload failed")
)
