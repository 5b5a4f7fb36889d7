package service

import (
	"context"
	"testing"

	"mindspark/internal/domain"
	"mindspark/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetOrCreateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the existing profile untouched", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		svc := NewProfileService(profileRepo)

		existing := &domain.UserProfile{ID: "profile-1", UserID: "user-1", Points: 55, Level: 2}
		profileRepo.On("GetProfileByUserID", ctx, "user-1").Return(existing, nil)

		profile, err := svc.GetOrCreateProfile(ctx, "user-1")

		assert.NoError(t, err)
		assert.Equal(t, existing, profile)
		profileRepo.AssertNotCalled(t, "CreateProfile", mock.Anything, mock.Anything)
	})

	t.Run("creates a default profile on first access", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		svc := NewProfileService(profileRepo)

		profileRepo.On("GetProfileByUserID", ctx, "user-1").Return(nil, nil)
		profileRepo.On("CreateProfile", ctx, mock.MatchedBy(func(p *domain.UserProfile) bool {
			return p.UserID == "user-1" && p.Points == 0 && p.Level == 1 && p.NotificationsEnabled
		})).Return(nil)

		profile, err := svc.GetOrCreateProfile(ctx, "user-1")

		assert.NoError(t, err)
		assert.Equal(t, 0, profile.Points)
		assert.Equal(t, 1, profile.Level)
		profileRepo.AssertExpectations(t)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("applies only the provided fields", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		svc := NewProfileService(profileRepo)

		existing := &domain.UserProfile{
			ID:       "profile-1",
			UserID:   "user-1",
			Name:     "Alex",
			Timezone: "America/New_York",
			Points:   55,
			Level:    2,
		}
		profileRepo.On("GetProfileByUserID", ctx, "user-1").Return(existing, nil)

		tz := "Europe/Berlin"
		profileRepo.On("UpdateProfile", ctx, mock.MatchedBy(func(p *domain.UserProfile) bool {
			// Name stays, timezone changes, progression is untouched.
			return p.Name == "Alex" && p.Timezone == tz && p.Points == 55 && p.Level == 2
		})).Return(nil)

		resp, err := svc.UpdateProfile(ctx, "user-1", &dto.UpdateProfileRequest{Timezone: &tz})

		assert.NoError(t, err)
		assert.Equal(t, tz, resp.Timezone)
		assert.Equal(t, 55, resp.Points)
		profileRepo.AssertExpectations(t)
	})
}
