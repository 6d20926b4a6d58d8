// Package adapters provides the payment provider implementation.
package adapters

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"

	"market_backend/internal/feature/payment/usecase"
)

// StripeGateway creates payment intents through the Stripe API.
type StripeGateway struct {
	intents paymentintent.Client
}

var _ usecase.PaymentGateway = (*StripeGateway)(nil)

// NewStripeGateway builds a gateway authenticated with secretKey.
// An empty apiURL targets the public Stripe API; hc must carry a timeout.
func NewStripeGateway(secretKey, apiURL string, hc *http.Client) *StripeGateway {
	cfg := &stripe.BackendConfig{
		HTTPClient:        hc,
		LeveledLogger:     logrus.StandardLogger(),
		MaxNetworkRetries: stripe.Int64(0),
	}
	if apiURL != "" {
		cfg.URL = stripe.String(apiURL)
	}
	return &StripeGateway{
		intents: paymentintent.Client{
			B:   stripe.GetBackendWithConfig(stripe.APIBackend, cfg),
			Key: secretKey,
		},
	}
}

// CreatePaymentIntent creates an intent for amount minor units of currency.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency, description string) (*usecase.Intent, error) {
	if g.intents.Key == "" {
		return nil, errors.New("stripe secret key is not configured")
	}
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
	}
	if description != "" {
		params.Description = stripe.String(description)
	}
	params.Context = ctx

	pi, err := g.intents.New(params)
	if err != nil {
		return nil, err
	}
	return &usecase.Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}
