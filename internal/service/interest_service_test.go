package service

import (
	"context"
	"testing"

	"mindspark/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSetInterests(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the selection wholesale", func(t *testing.T) {
		interestRepo := new(MockInterestRepository)
		svc := NewInterestService(interestRepo, passthroughTxManager{})

		expected := []domain.ActivityType{domain.ActivityMath, domain.ActivityTrivia}
		interestRepo.On("ReplaceInterests", ctx, "user-1", expected).Return(nil)
		interestRepo.On("GetInterestsByUserID", ctx, "user-1").Return([]domain.UserInterest{
			{UserID: "user-1", InterestType: domain.ActivityMath, IsSelected: true},
			{UserID: "user-1", InterestType: domain.ActivityTrivia, IsSelected: true},
		}, nil)

		resp, err := svc.SetInterests(ctx, "user-1", []string{"math", "trivia"})

		assert.NoError(t, err)
		assert.Len(t, resp.Interests, 2)
		assert.Equal(t, "math", resp.Interests[0].InterestType)
		interestRepo.AssertExpectations(t)
	})

	t.Run("an empty list clears the selection", func(t *testing.T) {
		interestRepo := new(MockInterestRepository)
		svc := NewInterestService(interestRepo, passthroughTxManager{})

		interestRepo.On("ReplaceInterests", ctx, "user-1", []domain.ActivityType{}).Return(nil)
		interestRepo.On("GetInterestsByUserID", ctx, "user-1").Return([]domain.UserInterest{}, nil)

		resp, err := svc.SetInterests(ctx, "user-1", nil)

		assert.NoError(t, err)
		assert.Empty(t, resp.Interests)
	})

	t.Run("rejects unknown interest types before touching storage", func(t *testing.T) {
		interestRepo := new(MockInterestRepository)
		svc := NewInterestService(interestRepo, passthroughTxManager{})

		resp, err := svc.SetInterests(ctx, "user-1", []string{"math", "astrology"})

		assert.Nil(t, resp)
		var domainErr *domain.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeInvalidInterestType, domainErr.Code)
		interestRepo.AssertNotCalled(t, "ReplaceInterests", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGetInterests(t *testing.T) {
	ctx := context.Background()

	interestRepo := new(MockInterestRepository)
	svc := NewInterestService(interestRepo, passthroughTxManager{})

	interestRepo.On("GetInterestsByUserID", ctx, "user-1").Return([]domain.UserInterest{
		{UserID: "user-1", InterestType: domain.ActivityPuzzle, IsSelected: true},
		{UserID: "user-1", InterestType: domain.ActivityStory, IsSelected: false},
	}, nil)

	resp, err := svc.GetInterests(ctx, "user-1")

	assert.NoError(t, err)
	assert.Len(t, resp.Interests, 2)
	assert.True(t, resp.Interests[0].IsSelected)
	assert.False(t, resp.Interests[1].IsSelected)
}
