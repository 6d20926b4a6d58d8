// Package dto defines data transfer objects for the offers feature's HTTP transport layer.
package dto

import (
	"market_backend/internal/feature/offers/domain/entity"
	"market_backend/internal/shared/asset"
)

// AccountRes is the public account block of an owner.
type AccountRes struct {
	Username string            `json:"username"`
	Avatar   *asset.Descriptor `json:"avatar"`
}

// OwnerRes is the owner of an offer. Newsletter only appears on the detail and publish views.
type OwnerRes struct {
	ID         string     `json:"_id"`
	Account    AccountRes `json:"account"`
	Newsletter *bool      `json:"newsletter,omitempty"`
}

// OfferRes is the response DTO of a single offer.
type OfferRes struct {
	ID                 string            `json:"_id"`
	ProductName        string            `json:"product_name"`
	ProductDescription string            `json:"product_description"`
	ProductPrice       float64           `json:"product_price"`
	ProductDetails     entity.Details    `json:"product_details"`
	ProductImage       *asset.Descriptor `json:"product_image,omitempty"`
	Owner              *OwnerRes         `json:"owner"`
}

func NewOfferRes(o *entity.Offer) OfferRes {
	res := OfferRes{
		ID:                 o.ID,
		ProductName:        o.Name,
		ProductDescription: o.Description,
		ProductPrice:       o.Price,
		ProductDetails:     o.Details,
		ProductImage:       o.Image,
	}
	if o.Owner != nil {
		res.Owner = &OwnerRes{
			ID:         o.Owner.ID,
			Account:    AccountRes{Username: o.Owner.Username, Avatar: o.Owner.Avatar},
			Newsletter: o.Owner.Newsletter,
		}
	}
	return res
}

// NewOfferListRes always returns a non-nil slice so an empty page encodes as [].
func NewOfferListRes(offers []entity.Offer) []OfferRes {
	out := make([]OfferRes, 0, len(offers))
	for i := range offers {
		out = append(out, NewOfferRes(&offers[i]))
	}
	return out
}
