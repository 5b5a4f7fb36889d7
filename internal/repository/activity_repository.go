package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"mindspark/internal/domain"
	"mindspark/internal/repository/models"
	"mindspark/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxActivityRepository implements domain.ActivityRepository using sqlx.
type sqlxActivityRepository struct {
	db *sqlx.DB
}

// NewSQLXActivityRepository creates a new instance of sqlxActivityRepository.
func NewSQLXActivityRepository(db *sqlx.DB) domain.ActivityRepository {
	return &sqlxActivityRepository{db: db}
}

const activityColumns = `id, title, description, content, activity_type,
	difficulty_level, estimated_duration, points_reward, answer,
	created_at, updated_at`

// GetActivityByID retrieves one catalog row by id.
// Returns (nil, nil) when the row does not exist.
func (r *sqlxActivityRepository) GetActivityByID(ctx context.Context, id string) (*domain.Activity, error) {
	var model models.Activity
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = ?`

	err := GetExecutor(ctx, r.db).GetContext(ctx, &model, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get activity by id %s: %w", id, err)
	}
	return toDomainActivity(&model), nil
}

// GetRandomActivity picks one row uniformly at random, optionally
// restricted to the given activity types. An empty pool yields
// (nil, nil); the caller decides whether that is an error.
func (r *sqlxActivityRepository) GetRandomActivity(ctx context.Context, types []domain.ActivityType) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities`
	var args []interface{}

	if len(types) > 0 {
		typeStrings := make([]string, len(types))
		for i, t := range types {
			typeStrings[i] = string(t)
		}
		inQuery, inArgs, err := sqlx.In(query+` WHERE activity_type IN (?)`, typeStrings)
		if err != nil {
			return nil, fmt.Errorf("failed to build interest filter: %w", err)
		}
		query = inQuery
		args = inArgs
	}

	query += ` ORDER BY RANDOM() LIMIT 1`

	var model models.Activity
	err := GetExecutor(ctx, r.db).GetContext(ctx, &model, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get random activity: %w", err)
	}
	return toDomainActivity(&model), nil
}

// SaveActivity inserts a new catalog row. Runtime traffic never calls
// this; it serves the seed and generator commands.
func (r *sqlxActivityRepository) SaveActivity(ctx context.Context, activity *domain.Activity) error {
	model := fromDomainActivity(activity)
	if model.ID == "" {
		model.ID = util.NewULID()
	}
	now := time.Now()
	model.CreatedAt = now
	model.UpdatedAt = now

	query := `INSERT INTO activities (
		id, title, description, content, activity_type,
		difficulty_level, estimated_duration, points_reward, answer,
		created_at, updated_at
	) VALUES (
		:id, :title, :description, :content, :activity_type,
		:difficulty_level, :estimated_duration, :points_reward, :answer,
		:created_at, :updated_at
	)`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to save activity: %w", err)
	}

	activity.ID = model.ID
	activity.CreatedAt = model.CreatedAt
	activity.UpdatedAt = model.UpdatedAt
	return nil
}

// GetActivityTitles lists every catalog title.
func (r *sqlxActivityRepository) GetActivityTitles(ctx context.Context) ([]string, error) {
	var titles []string
	query := `SELECT title FROM activities ORDER BY title`

	err := GetExecutor(ctx, r.db).SelectContext(ctx, &titles, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity titles: %w", err)
	}
	return titles, nil
}

// SaveSubmission appends one graded answer attempt. The log is
// append-only; nothing ever updates or deduplicates rows here.
func (r *sqlxActivityRepository) SaveSubmission(ctx context.Context, submission *domain.ActivitySubmission) error {
	model := fromDomainSubmission(submission)
	if model.ID == "" {
		model.ID = util.NewULID()
	}
	now := time.Now()
	if model.SubmittedAt.IsZero() {
		model.SubmittedAt = now
	}
	model.CreatedAt = now
	model.UpdatedAt = now

	query := `INSERT INTO user_activity_submissions (
		id, user_id, activity_id, submitted_answer, is_correct,
		submitted_at, created_at, updated_at
	) VALUES (
		:id, :user_id, :activity_id, :submitted_answer, :is_correct,
		:submitted_at, :created_at, :updated_at
	)`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to save submission: %w", err)
	}

	submission.ID = model.ID
	submission.SubmittedAt = model.SubmittedAt
	return nil
}

// SaveCompletion appends one completion row. Each row independently
// credits points; a repeated completion is a new row, not a conflict.
func (r *sqlxActivityRepository) SaveCompletion(ctx context.Context, completion *domain.ActivityCompletion) error {
	model := fromDomainCompletion(completion)
	if model.ID == "" {
		model.ID = util.NewULID()
	}
	now := time.Now()
	if model.CompletedAt.IsZero() {
		model.CompletedAt = now
	}
	model.CreatedAt = now
	model.UpdatedAt = now

	query := `INSERT INTO user_activity_completions (
		id, user_id, activity_id, points_earned, time_spent, rating,
		completed_at, created_at, updated_at
	) VALUES (
		:id, :user_id, :activity_id, :points_earned, :time_spent, :rating,
		:completed_at, :created_at, :updated_at
	)`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to save completion: %w", err)
	}

	completion.ID = model.ID
	completion.CompletedAt = model.CompletedAt
	return nil
}

// CountCompletionsByUserID counts the user's completion rows.
func (r *sqlxActivityRepository) CountCompletionsByUserID(ctx context.Context, userID string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM user_activity_completions WHERE user_id = ?`

	err := GetExecutor(ctx, r.db).GetContext(ctx, &count, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count completions for user %s: %w", userID, err)
	}
	return count, nil
}

// Helper functions for model conversion

func toDomainActivity(m *models.Activity) *domain.Activity {
	if m == nil {
		return nil
	}
	return &domain.Activity{
		ID:                m.ID,
		Title:             m.Title,
		Description:       m.Description,
		Content:           m.Content,
		Type:              domain.ActivityType(m.ActivityType),
		DifficultyLevel:   m.DifficultyLevel,
		EstimatedDuration: m.EstimatedDuration,
		PointsReward:      m.PointsReward,
		Answer:            util.NullStringToPtr(m.Answer),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func fromDomainActivity(d *domain.Activity) *models.Activity {
	if d == nil {
		return nil
	}
	return &models.Activity{
		ID:                d.ID,
		Title:             d.Title,
		Description:       d.Description,
		Content:           d.Content,
		ActivityType:      string(d.Type),
		DifficultyLevel:   d.DifficultyLevel,
		EstimatedDuration: d.EstimatedDuration,
		PointsReward:      d.PointsReward,
		Answer:            util.StringPtrToNullString(d.Answer),
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func fromDomainSubmission(d *domain.ActivitySubmission) *models.ActivitySubmission {
	if d == nil {
		return nil
	}
	return &models.ActivitySubmission{
		ID:              d.ID,
		UserID:          d.UserID,
		ActivityID:      d.ActivityID,
		SubmittedAnswer: d.SubmittedAnswer,
		IsCorrect:       d.IsCorrect,
		SubmittedAt:     d.SubmittedAt,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func fromDomainCompletion(d *domain.ActivityCompletion) *models.ActivityCompletion {
	if d == nil {
		return nil
	}
	return &models.ActivityCompletion{
		ID:           d.ID,
		UserID:       d.UserID,
		ActivityID:   d.ActivityID,
		PointsEarned: d.PointsEarned,
		TimeSpent:    util.IntPtrToNullInt64(d.TimeSpent),
		Rating:       util.IntPtrToNullInt64(d.Rating),
		CompletedAt:  d.CompletedAt,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
