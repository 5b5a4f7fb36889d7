package service

import (
	"context"

	"mindspark/internal/domain"
	"mindspark/internal/dto"
	"mindspark/internal/logger"

	"go.uber.org/zap"
)

// InterestService defines the interface for interest selection operations
type InterestService interface {
	GetInterests(ctx context.Context, userID string) (*dto.InterestsResponse, error)
	// SetInterests replaces the user's entire selection with the given
	// types. The replacement is transactional; a failed insert leaves
	// the previous selection intact.
	SetInterests(ctx context.Context, userID string, interests []string) (*dto.InterestsResponse, error)
}

// interestService implements InterestService
type interestService struct {
	interestRepo domain.InterestRepository
	txManager    domain.TransactionManager
}

// NewInterestService creates a new instance of interestService
func NewInterestService(interestRepo domain.InterestRepository, txManager domain.TransactionManager) InterestService {
	return &interestService{
		interestRepo: interestRepo,
		txManager:    txManager,
	}
}

// GetInterests implements InterestService
func (s *interestService) GetInterests(ctx context.Context, userID string) (*dto.InterestsResponse, error) {
	interests, err := s.interestRepo.GetInterestsByUserID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get interests", err)
	}
	return toInterestsResponse(interests), nil
}

// SetInterests implements InterestService
func (s *interestService) SetInterests(ctx context.Context, userID string, interests []string) (*dto.InterestsResponse, error) {
	types := make([]domain.ActivityType, 0, len(interests))
	for _, raw := range interests {
		t, err := domain.ParseActivityType(raw)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.interestRepo.ReplaceInterests(txCtx, userID, types)
	})
	if err != nil {
		return nil, domain.NewInternalError("Failed to replace interests", err)
	}

	logger.Get().Info("Replaced interest selection",
		zap.String("userID", userID),
		zap.Int("count", len(types)))

	saved, err := s.interestRepo.GetInterestsByUserID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get interests", err)
	}
	return toInterestsResponse(saved), nil
}

func toInterestsResponse(interests []domain.UserInterest) *dto.InterestsResponse {
	items := make([]dto.InterestItem, 0, len(interests))
	for _, interest := range interests {
		items = append(items, dto.InterestItem{
			InterestType: string(interest.InterestType),
			IsSelected:   interest.IsSelected,
		})
	}
	return &dto.InterestsResponse{Interests: items}
}
