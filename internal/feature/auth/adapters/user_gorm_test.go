package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"market_backend/internal/feature/auth/domain/entity"
	"market_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&entity.User{}), "failed to migrate table")
	return db
}

func newUser(email, token string) *entity.User {
	return &entity.User{
		Email:    email,
		Username: "bob",
		Salt:     "salt",
		Hash:     "hash",
		Token:    token,
	}
}

func TestNewUserGorm(t *testing.T) {
	db := setupTestDB(t)

	repo := NewUserGorm(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestUserGorm_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))
		user := newUser("b@x.com", "tok-1")

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotEmpty(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate email error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)
		require.NoError(t, repo.Create(context.Background(), newUser("dup@x.com", "tok-1")))

		err := repo.Create(context.Background(), newUser("dup@x.com", "tok-2"))

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)

		var count int64
		require.NoError(t, db.Model(&entity.User{}).Where("email = ?", "dup@x.com").Count(&count).Error)
		assert.Equal(t, int64(1), count, "exactly one user with the email must remain")
	})

	t.Run("nil user error", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))

		err := repo.Create(context.Background(), nil)

		assert.Error(t, err, "should return error for nil user")
	})
}

func TestUserGorm_FindByEmail(t *testing.T) {
	t.Run("find user by email successfully", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))
		expected := newUser("find@x.com", "tok-1")
		require.NoError(t, repo.Create(context.Background(), expected))

		found, err := repo.FindByEmail(context.Background(), "find@x.com")

		require.NoError(t, err, "failed to find user")
		assert.Equal(t, expected.ID, found.ID)
		assert.Equal(t, expected.Hash, found.Hash)
		assert.Equal(t, expected.Salt, found.Salt)
		assert.Equal(t, expected.Token, found.Token)
		assert.Nil(t, found.Avatar)
	})

	t.Run("email not found error", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))

		found, err := repo.FindByEmail(context.Background(), "nobody@x.com")

		assert.Nil(t, found)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserGorm_FindByToken(t *testing.T) {
	repo := NewUserGorm(setupTestDB(t))
	expected := newUser("tok@x.com", "the-token")
	require.NoError(t, repo.Create(context.Background(), expected))

	t.Run("known token", func(t *testing.T) {
		found, err := repo.FindByToken(context.Background(), "the-token")

		require.NoError(t, err)
		assert.Equal(t, expected.ID, found.ID)
	})

	t.Run("unknown token", func(t *testing.T) {
		found, err := repo.FindByToken(context.Background(), "other")

		assert.Nil(t, found)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}
