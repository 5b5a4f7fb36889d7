package service

import (
	"context"

	"mindspark/internal/domain"
	"mindspark/internal/dto"
	"mindspark/internal/logger"

	"go.uber.org/zap"
)

const (
	defaultTimezone = "America/New_York"
	initialLevel    = 1
)

// ProfileService defines the interface for user profile operations
type ProfileService interface {
	// GetOrCreateProfile returns the user's profile, creating it with
	// zero points and level 1 on first access.
	GetOrCreateProfile(ctx context.Context, userID string) (*domain.UserProfile, error)
	GetProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error)
	// AddPoints credits points atomically. It participates in a caller's
	// transaction when ctx carries one.
	AddPoints(ctx context.Context, userID string, points int) error
}

// profileService implements ProfileService
type profileService struct {
	profileRepo domain.ProfileRepository
}

// NewProfileService creates a new instance of profileService
func NewProfileService(profileRepo domain.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

// GetOrCreateProfile implements ProfileService
func (s *profileService) GetOrCreateProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile, err := s.profileRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get user profile", err)
	}
	if profile != nil {
		return profile, nil
	}

	profile = &domain.UserProfile{
		UserID:               userID,
		Timezone:             defaultTimezone,
		NotificationsEnabled: true,
		Points:               0,
		Level:                initialLevel,
	}
	if err := s.profileRepo.CreateProfile(ctx, profile); err != nil {
		return nil, domain.NewInternalError("Failed to create user profile", err)
	}

	logger.Get().Info("Created profile on first access", zap.String("userID", userID))
	return profile, nil
}

// GetProfile implements ProfileService
func (s *profileService) GetProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error) {
	profile, err := s.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// UpdateProfile applies the non-nil fields of req to the profile.
func (s *profileService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	profile, err := s.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Timezone != nil {
		profile.Timezone = *req.Timezone
	}
	if req.NotificationsEnabled != nil {
		profile.NotificationsEnabled = *req.NotificationsEnabled
	}

	if err := s.profileRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, domain.NewInternalError("Failed to update user profile", err)
	}

	return toProfileResponse(profile), nil
}

// AddPoints implements ProfileService
func (s *profileService) AddPoints(ctx context.Context, userID string, points int) error {
	if err := s.profileRepo.AddPoints(ctx, userID, points); err != nil {
		return domain.NewInternalError("Failed to add points", err)
	}
	return nil
}

func toProfileResponse(profile *domain.UserProfile) *dto.UserProfileResponse {
	return &dto.UserProfileResponse{
		ID:                   profile.ID,
		Name:                 profile.Name,
		Timezone:             profile.Timezone,
		NotificationsEnabled: profile.NotificationsEnabled,
		Points:               profile.Points,
		Level:                profile.Level,
	}
}
