package usecase

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"market_backend/internal/feature/offers/domain/entity"
	"market_backend/internal/shared/asset"
)

// MaxPictureSize caps the size of an uploaded picture (10MB).
const MaxPictureSize = 10 * 1024 * 1024

// OfferRepository abstracts the persistence layer for offers.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type OfferRepository interface {
	// Create persists the offer and sets its identifier.
	Create(ctx context.Context, offer *entity.Offer) error
	// List returns one page of offers matching q, without owners.
	List(ctx context.Context, q entity.ListQuery) ([]entity.Offer, error)
	// FindByID returns ErrOfferNotFound when nothing matches id.
	FindByID(ctx context.Context, id string) (*entity.Offer, error)
}

// OwnerDirectory resolves owner references to public profiles.
type OwnerDirectory interface {
	// FindOwners returns the profiles of the given users keyed by id. With full
	// set, the profile also carries the newsletter flag.
	FindOwners(ctx context.Context, ids []string, full bool) (map[string]entity.Owner, error)
}

// AssetStore uploads pictures to external storage.
type AssetStore interface {
	UploadImage(ctx context.Context, filename, contentType string, data []byte) (*asset.Descriptor, error)
}

// Picture is an image file attached to a publish request.
type Picture struct {
	Filename string
	Data     []byte
}

// PublishInput carries the raw fields of a publish request.
type PublishInput struct {
	Title       string
	Description string
	Price       string
	Brand       string
	Size        string
	Condition   string
	Color       string
	City        string
	Picture     *Picture
}

// offerUsecase implements listing, detail and publishing of offers.
type offerUsecase struct {
	offers OfferRepository
	owners OwnerDirectory
	assets AssetStore
}

// NewOfferUsecase creates a new offerUsecase.
func NewOfferUsecase(offers OfferRepository, owners OwnerDirectory, assets AssetStore) *offerUsecase {
	return &offerUsecase{offers: offers, owners: owners, assets: assets}
}

// List returns the requested page of offers with owners partially resolved.
func (u *offerUsecase) List(ctx context.Context, q entity.ListQuery) ([]entity.Offer, error) {
	if !q.Sort.Valid() {
		return nil, fmt.Errorf("%w: unknown sort %q", ErrInvalidQuery, q.Sort)
	}
	if q.Page < 1 {
		q.Page = 1
	}
	q.Title = strings.TrimSpace(q.Title)

	offers, err := u.offers.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if err := u.resolveOwners(ctx, offers, false); err != nil {
		return nil, err
	}
	return offers, nil
}

// Detail returns one offer with its owner fully resolved.
func (u *offerUsecase) Detail(ctx context.Context, id string) (*entity.Offer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrOfferNotFound
	}
	offer, err := u.offers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	one := []entity.Offer{*offer}
	if err := u.resolveOwners(ctx, one, true); err != nil {
		return nil, err
	}
	return &one[0], nil
}

// Publish validates and persists a new offer owned by owner.
// The picture, when present, is uploaded before the offer is written.
func (u *offerUsecase) Publish(ctx context.Context, owner entity.Owner, in PublishInput) (*entity.Offer, error) {
	if owner.ID == "" {
		return nil, fmt.Errorf("publish without owner")
	}

	title := strings.TrimSpace(in.Title)
	rawPrice := strings.TrimSpace(in.Price)
	if title == "" || rawPrice == "" {
		return nil, fmt.Errorf("%w: title and price are required", ErrInvalidOffer)
	}
	price, err := strconv.ParseFloat(rawPrice, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, fmt.Errorf("%w: price must be a number", ErrInvalidOffer)
	}

	offer := &entity.Offer{
		Name:        title,
		Description: in.Description,
		Price:       price,
		Details:     entity.NewDetails(in.Brand, in.Size, in.Condition, in.Color, in.City),
		OwnerID:     owner.ID,
	}

	if in.Picture != nil {
		contentType, err := checkPicture(in.Picture)
		if err != nil {
			return nil, err
		}
		image, err := u.assets.UploadImage(ctx, in.Picture.Filename, contentType, in.Picture.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrAssetUpload, err)
		}
		offer.Image = image
	}

	if err := u.offers.Create(ctx, offer); err != nil {
		return nil, err
	}
	offer.Owner = &owner
	return offer, nil
}

func checkPicture(p *Picture) (string, error) {
	if len(p.Data) == 0 {
		return "", fmt.Errorf("%w: picture is empty", ErrInvalidOffer)
	}
	if len(p.Data) > MaxPictureSize {
		return "", fmt.Errorf("%w: picture exceeds %d bytes", ErrInvalidOffer, MaxPictureSize)
	}
	contentType := http.DetectContentType(p.Data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: picture must be an image, got %s", ErrInvalidOffer, contentType)
	}
	return contentType, nil
}

// resolveOwners fills Owner on every offer with one directory lookup.
func (u *offerUsecase) resolveOwners(ctx context.Context, offers []entity.Offer, full bool) error {
	if len(offers) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(offers))
	ids := make([]string, 0, len(offers))
	for _, o := range offers {
		if _, ok := seen[o.OwnerID]; ok {
			continue
		}
		seen[o.OwnerID] = struct{}{}
		ids = append(ids, o.OwnerID)
	}

	owners, err := u.owners.FindOwners(ctx, ids, full)
	if err != nil {
		return fmt.Errorf("resolve owners: %w", err)
	}
	for i := range offers {
		if owner, ok := owners[offers[i].OwnerID]; ok {
			offers[i].Owner = &owner
		}
	}
	return nil
}
