// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// SignupReq represents the request body for POST /user/signup.
// Newsletter is a pointer so that an explicit false is distinguishable from an absent field.
type SignupReq struct {
	Username   string `json:"username" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	Newsletter *bool  `json:"newsletter" binding:"required"`
}
