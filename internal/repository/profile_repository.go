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

// sqlxProfileRepository implements domain.ProfileRepository using sqlx.
type sqlxProfileRepository struct {
	db *sqlx.DB
}

// NewSQLXProfileRepository creates a new instance of sqlxProfileRepository.
func NewSQLXProfileRepository(db *sqlx.DB) domain.ProfileRepository {
	return &sqlxProfileRepository{db: db}
}

// GetProfileByUserID retrieves the user's progression state.
// Returns (nil, nil) when no profile exists yet.
func (r *sqlxProfileRepository) GetProfileByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	var model models.UserProfile
	query := `SELECT id, user_id, name, timezone, notifications_enabled,
		points, level, created_at, updated_at
	FROM user_profiles WHERE user_id = ?`

	err := GetExecutor(ctx, r.db).GetContext(ctx, &model, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile for user %s: %w", userID, err)
	}
	return toDomainProfile(&model), nil
}

// CreateProfile inserts a fresh profile row. The unique index on
// user_id guarantees at most one profile per user.
func (r *sqlxProfileRepository) CreateProfile(ctx context.Context, profile *domain.UserProfile) error {
	model := fromDomainProfile(profile)
	if model.ID == "" {
		model.ID = util.NewULID()
	}
	now := time.Now()
	model.CreatedAt = now
	model.UpdatedAt = now

	query := `INSERT INTO user_profiles (
		id, user_id, name, timezone, notifications_enabled,
		points, level, created_at, updated_at
	) VALUES (
		:id, :user_id, :name, :timezone, :notifications_enabled,
		:points, :level, :created_at, :updated_at
	)`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	profile.ID = model.ID
	profile.CreatedAt = model.CreatedAt
	profile.UpdatedAt = model.UpdatedAt
	return nil
}

// UpdateProfile updates the mutable preference fields.
func (r *sqlxProfileRepository) UpdateProfile(ctx context.Context, profile *domain.UserProfile) error {
	model := fromDomainProfile(profile)
	model.UpdatedAt = time.Now()

	query := `UPDATE user_profiles SET
		name = :name,
		timezone = :timezone,
		notifications_enabled = :notifications_enabled,
		updated_at = :updated_at
	WHERE user_id = :user_id`

	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	profile.UpdatedAt = model.UpdatedAt
	return nil
}

// AddPoints credits the point balance with a single atomic UPDATE
// expression so concurrent completions never lose an increment.
func (r *sqlxProfileRepository) AddPoints(ctx context.Context, userID string, points int) error {
	query := `UPDATE user_profiles
		SET points = points + ?, updated_at = ?
		WHERE user_id = ?`

	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, points, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to add points for user %s: %w", userID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func toDomainProfile(m *models.UserProfile) *domain.UserProfile {
	if m == nil {
		return nil
	}
	return &domain.UserProfile{
		ID:                   m.ID,
		UserID:               m.UserID,
		Name:                 m.Name.String,
		Timezone:             m.Timezone,
		NotificationsEnabled: m.NotificationsEnabled,
		Points:               m.Points,
		Level:                m.Level,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

func fromDomainProfile(d *domain.UserProfile) *models.UserProfile {
	if d == nil {
		return nil
	}
	return &models.UserProfile{
		ID:                   d.ID,
		UserID:               d.UserID,
		Name:                 util.StringToNullString(d.Name),
		Timezone:             d.Timezone,
		NotificationsEnabled: d.NotificationsEnabled,
		Points:               d.Points,
		Level:                d.Level,
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
	}
}
