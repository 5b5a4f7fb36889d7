package service

import (
	"context"
	"strings"
	"time"

	"mindspark/internal/domain"
	"mindspark/internal/dto"
	"mindspark/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ActivityService defines the interface for activity-related operations
type ActivityService interface {
	GetRandomActivity(ctx context.Context, userID string) (*dto.ActivityResponse, error)
	SubmitAnswer(ctx context.Context, userID, activityID string, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
	CompleteActivity(ctx context.Context, userID, activityID string, req *dto.CompleteActivityRequest) (*dto.CompleteActivityResponse, error)
	GetStats(ctx context.Context, userID string) (*dto.StatsResponse, error)
}

// activityService implements ActivityService
type activityService struct {
	activityRepo   domain.ActivityRepository
	interestRepo   domain.InterestRepository
	badgeRepo      domain.BadgeRepository
	profileService ProfileService
	activityCache  ActivityCacheService
	txManager      domain.TransactionManager
}

// NewActivityService creates a new instance of activityService
func NewActivityService(
	activityRepo domain.ActivityRepository,
	interestRepo domain.InterestRepository,
	badgeRepo domain.BadgeRepository,
	profileService ProfileService,
	activityCache ActivityCacheService,
	txManager domain.TransactionManager,
) ActivityService {
	return &activityService{
		activityRepo:   activityRepo,
		interestRepo:   interestRepo,
		badgeRepo:      badgeRepo,
		profileService: profileService,
		activityCache:  activityCache,
		txManager:      txManager,
	}
}

// GetRandomActivity picks one activity uniformly at random, restricted to
// the user's selected interest types when any are selected. An interest
// filter that matches nothing is a not-found, never a silent widening of
// the pool.
func (s *activityService) GetRandomActivity(ctx context.Context, userID string) (*dto.ActivityResponse, error) {
	types, err := s.interestRepo.GetSelectedTypes(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get user interests", err)
	}

	activity, err := s.activityRepo.GetRandomActivity(ctx, types)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get random activity", err)
	}
	if activity == nil {
		return nil, domain.NewNotFoundError("no activities available")
	}

	return toActivityResponse(activity), nil
}

// SubmitAnswer grades a free-text answer against the activity's canonical
// answer. Both sides are trimmed and lowercased before an exact match.
// Every graded attempt is appended to the submission log with the raw
// answer text, and the canonical answer is always revealed in the response.
func (s *activityService) SubmitAnswer(ctx context.Context, userID, activityID string, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	activity, err := s.getActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if !activity.Gradable() {
		return nil, domain.NewActivityNotGradableError(activityID)
	}

	correct := normalizeAnswer(req.Answer) == normalizeAnswer(*activity.Answer)

	submission := &domain.ActivitySubmission{
		UserID:          userID,
		ActivityID:      activityID,
		SubmittedAnswer: req.Answer,
		IsCorrect:       correct,
		SubmittedAt:     time.Now(),
	}
	if err := s.activityRepo.SaveSubmission(ctx, submission); err != nil {
		return nil, domain.NewInternalError("Failed to record submission", err)
	}

	return &dto.SubmitAnswerResponse{
		Correct:       correct,
		CorrectAnswer: *activity.Answer,
	}, nil
}

// CompleteActivity appends a completion record and credits the activity's
// point reward to the user's profile inside one transaction. Completions
// are not deduplicated; finishing the same activity again credits again.
func (s *activityService) CompleteActivity(ctx context.Context, userID, activityID string, req *dto.CompleteActivityRequest) (*dto.CompleteActivityResponse, error) {
	activity, err := s.getActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}

	if _, err := s.profileService.GetOrCreateProfile(ctx, userID); err != nil {
		return nil, err
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		completion := &domain.ActivityCompletion{
			UserID:       userID,
			ActivityID:   activityID,
			PointsEarned: activity.PointsReward,
			TimeSpent:    req.TimeSpent,
			Rating:       req.Rating,
			CompletedAt:  time.Now(),
		}
		if err := s.activityRepo.SaveCompletion(txCtx, completion); err != nil {
			return err
		}
		return s.profileService.AddPoints(txCtx, userID, activity.PointsReward)
	})
	if err != nil {
		return nil, domain.NewInternalError("Failed to record completion", err)
	}

	logger.Get().Info("Activity completed",
		zap.String("userID", userID),
		zap.String("activityID", activityID),
		zap.Int("pointsEarned", activity.PointsReward))

	return &dto.CompleteActivityResponse{
		Message:      "activity completed",
		PointsEarned: activity.PointsReward,
	}, nil
}

// GetStats assembles the user's live aggregate. The profile is created
// lazily if missing, then the completion and badge counts are fetched
// concurrently.
func (s *activityService) GetStats(ctx context.Context, userID string) (*dto.StatsResponse, error) {
	profile, err := s.profileService.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	var totalCompletions, totalBadges int64

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totalCompletions, err = s.activityRepo.CountCompletionsByUserID(gCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		totalBadges, err = s.badgeRepo.CountBadgesByUserID(gCtx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("Failed to aggregate user stats", err)
	}

	return &dto.StatsResponse{
		TotalCompletions: totalCompletions,
		TotalPoints:      profile.Points,
		CurrentLevel:     profile.Level,
		TotalBadges:      totalBadges,
	}, nil
}

// getActivity resolves an activity through the catalog cache, translating
// the (nil, nil) miss into a not-found error.
func (s *activityService) getActivity(ctx context.Context, activityID string) (*domain.Activity, error) {
	activity, err := s.activityCache.GetActivity(ctx, activityID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get activity", err)
	}
	if activity == nil {
		return nil, domain.NewActivityNotFoundError(activityID)
	}
	return activity, nil
}

// normalizeAnswer trims surrounding whitespace and lowercases the text.
// Grading compares normalized forms only; the stored submission keeps the
// raw answer.
func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func toActivityResponse(activity *domain.Activity) *dto.ActivityResponse {
	return &dto.ActivityResponse{
		ID:                activity.ID,
		Title:             activity.Title,
		Description:       activity.Description,
		Content:           activity.Content,
		ActivityType:      string(activity.Type),
		DifficultyLevel:   activity.DifficultyLevel,
		EstimatedDuration: activity.EstimatedDuration,
		PointsReward:      activity.PointsReward,
	}
}
