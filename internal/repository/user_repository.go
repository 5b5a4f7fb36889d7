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

// sqlxUserRepository implements domain.UserRepository using sqlx.
type sqlxUserRepository struct {
	db *sqlx.DB
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db *sqlx.DB) domain.UserRepository {
	return &sqlxUserRepository{db: db}
}

const userColumns = `id, google_id, email, name, profile_picture_url,
	created_at, updated_at, deleted_at`

// CreateUser inserts a new user into the database.
func (r *sqlxUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	model := fromDomainUser(user)
	if model.ID == "" {
		model.ID = util.NewULID()
	}
	now := time.Now()
	model.CreatedAt = now
	model.UpdatedAt = now

	query := `INSERT INTO users (id, google_id, email, name, profile_picture_url, created_at, updated_at)
	          VALUES (:id, :google_id, :email, :name, :profile_picture_url, :created_at, :updated_at)`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = model.ID
	user.CreatedAt = model.CreatedAt
	user.UpdatedAt = model.UpdatedAt
	return nil
}

// GetUserByGoogleID retrieves a user by their Google ID.
// Returns (nil, nil) for not found; services decide the error.
func (r *sqlxUserRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	var model models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE google_id = ? AND deleted_at IS NULL`

	err := GetExecutor(ctx, r.db).GetContext(ctx, &model, query, googleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by google_id: %w", err)
	}
	return toDomainUser(&model), nil
}

// GetUserByID retrieves a user by their internal ID.
func (r *sqlxUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	var model models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ? AND deleted_at IS NULL`

	err := GetExecutor(ctx, r.db).GetContext(ctx, &model, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return toDomainUser(&model), nil
}

// UpdateUser updates an existing user's identity fields.
func (r *sqlxUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	model := fromDomainUser(user)
	model.UpdatedAt = time.Now()

	query := `UPDATE users SET
		email = :email,
		name = :name,
		profile_picture_url = :profile_picture_url,
		updated_at = :updated_at
	WHERE id = :id AND deleted_at IS NULL`

	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	user.UpdatedAt = model.UpdatedAt
	return nil
}

func toDomainUser(m *models.User) *domain.User {
	if m == nil {
		return nil
	}
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		deletedAt = &t
	}
	return &domain.User{
		ID:                m.ID,
		GoogleID:          m.GoogleID,
		Email:             m.Email,
		Name:              m.Name.String,
		ProfilePictureURL: m.ProfilePictureURL.String,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
		DeletedAt:         deletedAt,
	}
}

func fromDomainUser(d *domain.User) *models.User {
	if d == nil {
		return nil
	}
	var deletedAt sql.NullTime
	if d.DeletedAt != nil {
		deletedAt = util.TimeToNullTime(*d.DeletedAt)
	}
	return &models.User{
		ID:                d.ID,
		GoogleID:          d.GoogleID,
		Email:             d.Email,
		Name:              util.StringToNullString(d.Name),
		ProfilePictureURL: util.StringToNullString(d.ProfilePictureURL),
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
		DeletedAt:         deletedAt,
	}
}
