// Package dto defines data transfer objects for the payment feature's HTTP transport layer.
package dto

// PaymentReq represents the request body for POST /payment. Amount is in minor units.
type PaymentReq struct {
	Amount int64  `json:"amount" binding:"required"`
	Title  string `json:"title"`
}

// PaymentRes carries the client secret used by the front end to confirm the payment.
type PaymentRes struct {
	ClientSecret string `json:"clientSecret"`
}
