package service

import (
	"context"
	"testing"
	"time"

	"mindspark/internal/config"
	"mindspark/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func testAuthConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			SecretKey:       "0123456789abcdef0123456789abcdef",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 168 * time.Hour,
		},
	}
}

func TestNewAuthService(t *testing.T) {
	t.Run("rejects a short secret key", func(t *testing.T) {
		cfg := testAuthConfig()
		cfg.JWT.SecretKey = "too-short"

		_, err := NewAuthService(new(MockUserRepository), cfg)

		assert.Error(t, err)
	})
}

func TestCreateAndValidateJWT(t *testing.T) {
	ctx := context.Background()
	svc, err := NewAuthService(new(MockUserRepository), testAuthConfig())
	assert.NoError(t, err)

	user := &domain.User{ID: "01HX4J2M9N3P5Q7R9S1T3V5W7Y", Email: "student@example.com"}

	t.Run("round trip", func(t *testing.T) {
		token, err := svc.CreateJWT(ctx, user, 15*time.Minute, "access")
		assert.NoError(t, err)

		claims, err := svc.ValidateJWT(ctx, token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, "access", claims.TokenType)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token, err := svc.CreateJWT(ctx, user, -time.Minute, "access")
		assert.NoError(t, err)

		_, err = svc.ValidateJWT(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidJWTToken)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := svc.ValidateJWT(ctx, "not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidJWTToken)
	})
}

func TestRefreshToken(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: "01HX4J2M9N3P5Q7R9S1T3V5W7Y", Email: "student@example.com"}

	t.Run("issues a fresh token pair", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc, err := NewAuthService(userRepo, testAuthConfig())
		assert.NoError(t, err)

		refreshToken, err := svc.CreateJWT(ctx, user, time.Hour, "refresh")
		assert.NoError(t, err)

		userRepo.On("GetUserByID", ctx, user.ID).Return(user, nil)

		newAccess, newRefresh, err := svc.RefreshToken(ctx, refreshToken)
		assert.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.NotEmpty(t, newRefresh)

		claims, err := svc.ValidateJWT(ctx, newAccess)
		assert.NoError(t, err)
		assert.Equal(t, "access", claims.TokenType)
	})

	t.Run("an access token cannot refresh", func(t *testing.T) {
		svc, err := NewAuthService(new(MockUserRepository), testAuthConfig())
		assert.NoError(t, err)

		accessToken, err := svc.CreateJWT(ctx, user, time.Hour, "access")
		assert.NoError(t, err)

		_, _, err = svc.RefreshToken(ctx, accessToken)
		assert.Error(t, err)
	})

	t.Run("fails for a deleted user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc, err := NewAuthService(userRepo, testAuthConfig())
		assert.NoError(t, err)

		refreshToken, err := svc.CreateJWT(ctx, user, time.Hour, "refresh")
		assert.NoError(t, err)

		userRepo.On("GetUserByID", ctx, user.ID).Return(nil, nil)

		_, _, err = svc.RefreshToken(ctx, refreshToken)
		assert.True(t, domain.IsNotFound(err))
	})
}
