package repository

import (
	"context"
	"fmt"
	"time"

	"mindspark/internal/domain"
	"mindspark/internal/repository/models"
	"mindspark/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxInterestRepository implements domain.InterestRepository using sqlx.
type sqlxInterestRepository struct {
	db *sqlx.DB
}

// NewSQLXInterestRepository creates a new instance of sqlxInterestRepository.
func NewSQLXInterestRepository(db *sqlx.DB) domain.InterestRepository {
	return &sqlxInterestRepository{db: db}
}

// GetInterestsByUserID returns every interest row for the user ordered
// by interest_type.
func (r *sqlxInterestRepository) GetInterestsByUserID(ctx context.Context, userID string) ([]domain.UserInterest, error) {
	var modelInterests []models.UserInterest
	query := `SELECT id, user_id, interest_type, is_selected, created_at, updated_at
	FROM user_interests WHERE user_id = ? ORDER BY interest_type`

	err := GetExecutor(ctx, r.db).SelectContext(ctx, &modelInterests, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get interests for user %s: %w", userID, err)
	}

	interests := make([]domain.UserInterest, 0, len(modelInterests))
	for i := range modelInterests {
		interests = append(interests, *toDomainInterest(&modelInterests[i]))
	}
	return interests, nil
}

// GetSelectedTypes returns the activity types the user has opted into.
func (r *sqlxInterestRepository) GetSelectedTypes(ctx context.Context, userID string) ([]domain.ActivityType, error) {
	var typeStrings []string
	query := `SELECT interest_type FROM user_interests
	WHERE user_id = ? AND is_selected = 1 ORDER BY interest_type`

	err := GetExecutor(ctx, r.db).SelectContext(ctx, &typeStrings, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get selected interest types for user %s: %w", userID, err)
	}

	types := make([]domain.ActivityType, 0, len(typeStrings))
	for _, s := range typeStrings {
		types = append(types, domain.ActivityType(s))
	}
	return types, nil
}

// ReplaceInterests deletes the user's entire selection set and inserts
// the given types. The caller wraps it in a transaction so readers never
// observe the half-replaced state.
func (r *sqlxInterestRepository) ReplaceInterests(ctx context.Context, userID string, types []domain.ActivityType) error {
	exec := GetExecutor(ctx, r.db)

	if _, err := exec.ExecContext(ctx, `DELETE FROM user_interests WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("failed to clear interests for user %s: %w", userID, err)
	}

	now := time.Now()
	query := `INSERT INTO user_interests (
		id, user_id, interest_type, is_selected, created_at, updated_at
	) VALUES (
		:id, :user_id, :interest_type, :is_selected, :created_at, :updated_at
	)`

	for _, t := range types {
		model := &models.UserInterest{
			ID:           util.NewULID(),
			UserID:       userID,
			InterestType: string(t),
			IsSelected:   true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if _, err := exec.NamedExecContext(ctx, query, model); err != nil {
			return fmt.Errorf("failed to insert interest %s for user %s: %w", t, userID, err)
		}
	}
	return nil
}

func toDomainInterest(m *models.UserInterest) *domain.UserInterest {
	if m == nil {
		return nil
	}
	return &domain.UserInterest{
		ID:           m.ID,
		UserID:       m.UserID,
		InterestType: domain.ActivityType(m.InterestType),
		IsSelected:   m.IsSelected,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
