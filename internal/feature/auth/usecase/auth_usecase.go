package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"market_backend/internal/feature/auth/credential"
	"market_backend/internal/feature/auth/domain/entity"
)

// dummySalt feeds the digest when the email is unknown so that both login
// failure paths cost one derivation.
const dummySalt = "2Vq8nJ0yXo1kT5rQ7wLm3A"

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists when the
	// unique email index rejects the insert.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail returns ErrUserNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByToken returns ErrUserNotFound when no user holds the token.
	FindByToken(ctx context.Context, token string) (*entity.User, error)
}

// SignupInput carries the fields accepted at account creation.
type SignupInput struct {
	Username   string
	Email      string
	Password   string
	Newsletter bool
}

// authUsecase implements signup, login and bearer token resolution.
type authUsecase struct {
	users UserRepository
}

// NewAuthUsecase creates a new authUsecase.
func NewAuthUsecase(users UserRepository) *authUsecase {
	return &authUsecase{users: users}
}

// Signup creates an account with a fresh salt, digest and token.
// Uniqueness of the email is left to the store; a rejected insert surfaces as ErrEmailAlreadyExists.
func (u *authUsecase) Signup(ctx context.Context, in SignupInput) (*entity.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, ErrMissingParameters
	}

	salt, err := credential.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	token, err := credential.NewToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	user := &entity.User{
		Email:      in.Email,
		Username:   in.Username,
		Newsletter: in.Newsletter,
		Salt:       salt,
		Hash:       credential.Hash(in.Password, salt),
		Token:      token,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the password for the email and returns the account, whose
// Token is the one issued at signup.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := u.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
		credential.Verify(password, dummySalt, "")
		return nil, ErrInvalidCredentials
	}

	if !credential.Verify(password, user.Salt, user.Hash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// ValidateToken resolves a bearer token to its account.
func (u *authUsecase) ValidateToken(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	user, err := u.users.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}
