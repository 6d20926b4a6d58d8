// Package api defines the JSON envelopes shared by every HTTP handler.
package api

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}
