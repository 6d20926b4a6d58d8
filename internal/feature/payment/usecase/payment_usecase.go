package usecase

import (
	"context"
	"fmt"
	"strings"
)

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = "eur"

// Intent is a payment intent created at the provider.
type Intent struct {
	ID           string
	ClientSecret string
}

// PaymentGateway abstracts the payment provider.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency, description string) (*Intent, error)
}

type paymentUsecase struct {
	gateway  PaymentGateway
	currency string
}

// NewPaymentUsecase creates a payment usecase charging in currency.
func NewPaymentUsecase(gateway PaymentGateway, currency string) *paymentUsecase {
	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	return &paymentUsecase{gateway: gateway, currency: currency}
}

// CreateIntent requests a payment intent of amount minor units described by title.
func (u *paymentUsecase) CreateIntent(ctx context.Context, amount int64, title string) (*Intent, error) {
	if amount <= 0 {
		return nil, ErrMissingAmount
	}
	intent, err := u.gateway.CreatePaymentIntent(ctx, amount, u.currency, strings.TrimSpace(title))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}
	return intent, nil
}
