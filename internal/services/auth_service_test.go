package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spydz12/Eleman-Shoes/internal/models"
	"github.com/spydz12/Eleman-Shoes/internal/repository"
)

func createTestAdmin(t *testing.T, password string) *models.AdminUser {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.AdminUser{ID: uuid.New(), Email: "admin@edoseleman.com", PasswordHash: string(hash)}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	admin := createTestAdmin(t, "s3cret!")

	t.Run("valid credentials issue a token", func(t *testing.T) {
		repo := new(MockAdminRepository)
		service := NewAuthService(repo, "test-secret", 2*time.Hour, "eleman-shoes")
		repo.On("GetByEmail", ctx, "admin@edoseleman.com").Return(admin, nil)
		repo.On("TouchLogin", ctx, admin).Return(nil)

		resp, err := service.Login(ctx, "admin@edoseleman.com", "s3cret!")

		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.WithinDuration(t, time.Now().Add(2*time.Hour), resp.ExpiresAt, time.Minute)

		claims, err := service.ParseToken(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, admin.ID.String(), claims.AdminID)
		assert.Equal(t, admin.Email, claims.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockAdminRepository)
		service := NewAuthService(repo, "test-secret", time.Hour, "eleman-shoes")
		repo.On("GetByEmail", ctx, "admin@edoseleman.com").Return(admin, nil)

		_, err := service.Login(ctx, "admin@edoseleman.com", "guess")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		repo.AssertNotCalled(t, "TouchLogin", mock.Anything, mock.Anything)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(MockAdminRepository)
		service := NewAuthService(repo, "test-secret", time.Hour, "eleman-shoes")
		repo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, repository.ErrNotFound)

		_, err := service.Login(ctx, "nobody@example.com", "x")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_ParseToken(t *testing.T) {
	admin := &models.AdminUser{ID: uuid.New(), Email: "admin@edoseleman.com"}
	service := NewAuthService(nil, "test-secret", time.Hour, "eleman-shoes")

	token, _, err := service.IssueToken(admin)
	require.NoError(t, err)

	t.Run("other secret", func(t *testing.T) {
		other := NewAuthService(nil, "another-secret", time.Hour, "eleman-shoes")
		_, err := other.ParseToken(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		later := NewAuthService(nil, "test-secret", time.Hour, "eleman-shoes")
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := later.ParseToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := service.ParseToken("not-a-token")
		assert.Error(t, err)
	})
}

func TestAuthService_EnsureBootstrapAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the first admin", func(t *testing.T) {
		repo := new(MockAdminRepository)
		service := NewAuthService(repo, "test-secret", time.Hour, "eleman-shoes")
		repo.On("Count", ctx).Return(int64(0), nil)
		repo.On("Create", ctx, mock.MatchedBy(func(a *models.AdminUser) bool {
			return a.Email == "owner@edoseleman.com" &&
				bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("changeme")) == nil
		})).Return(nil)

		created, err := service.EnsureBootstrapAdmin(ctx, "owner@edoseleman.com", "changeme", "Owner")
		require.NoError(t, err)
		assert.True(t, created)
		repo.AssertExpectations(t)
	})

	t.Run("admins already exist", func(t *testing.T) {
		repo := new(MockAdminRepository)
		service := NewAuthService(repo, "test-secret", time.Hour, "eleman-shoes")
		repo.On("Count", ctx).Return(int64(2), nil)

		created, err := service.EnsureBootstrapAdmin(ctx, "owner@edoseleman.com", "changeme", "Owner")
		require.NoError(t, err)
		assert.False(t, created)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("no bootstrap credentials", func(t *testing.T) {
		repo := new(MockAdminRepository)
		service := NewAuthService(repo, "test-secret", time.Hour, "eleman-shoes")

		created, err := service.EnsureBootstrapAdmin(ctx, "", "", "")
		require.NoError(t, err)
		assert.False(t, created)
		repo.AssertNotCalled(t, "Count", mock.Anything)
	})
}
