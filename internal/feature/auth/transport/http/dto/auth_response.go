package dto

import "market_backend/internal/feature/auth/domain/entity"

// AccountRes is the public account block of an auth response.
type AccountRes struct {
	Username string `json:"username"`
}

// AuthRes is returned by signup and login. It never carries the email or any
// password-derived value.
type AuthRes struct {
	Token   string     `json:"token"`
	ID      string     `json:"_id"`
	Account AccountRes `json:"account"`
}

// NewAuthRes builds the response for u.
func NewAuthRes(u *entity.User) AuthRes {
	return AuthRes{
		Token:   u.Token,
		ID:      u.ID,
		Account: AccountRes{Username: u.Username},
	}
}
