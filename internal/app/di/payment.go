package di

import (
	"github.com/sirupsen/logrus"

	"market_backend/internal/config"
	paymentadapters "market_backend/internal/feature/payment/adapters"
	infrahttp "market_backend/internal/platform/http"
)

// NewPaymentGateway creates a fully configured Stripe gateway with its HTTP client.
func NewPaymentGateway(cfg config.Config) *paymentadapters.StripeGateway {
	if cfg.Stripe.SecretKey == "" {
		logrus.Warn("STRIPE_SECRET_KEY is not set, payment requests will fail")
	}
	httpClient := infrahttp.NewHTTPClient(cfg.Stripe.Timeout)
	return paymentadapters.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.APIURL, httpClient)
}
