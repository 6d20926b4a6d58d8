// Package usecase implements payment-intent creation.
package usecase

import "errors"

var (
	// ErrMissingAmount is returned when the amount is absent or not positive.
	ErrMissingAmount = errors.New("missing amount")

	// ErrPaymentGateway wraps failures reported by the payment provider.
	ErrPaymentGateway = errors.New("payment gateway error")
)
