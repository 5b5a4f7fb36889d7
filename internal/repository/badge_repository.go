package repository

import (
	"context"
	"fmt"

	"mindspark/internal/domain"

	"github.com/jmoiron/sqlx"
)

// sqlxBadgeRepository implements domain.BadgeRepository using sqlx.
// No write path exists yet; badge rows only appear if something outside
// the service inserts them.
type sqlxBadgeRepository struct {
	db *sqlx.DB
}

// NewSQLXBadgeRepository creates a new instance of sqlxBadgeRepository.
func NewSQLXBadgeRepository(db *sqlx.DB) domain.BadgeRepository {
	return &sqlxBadgeRepository{db: db}
}

// CountBadgesByUserID counts the user's earned badges.
func (r *sqlxBadgeRepository) CountBadgesByUserID(ctx context.Context, userID string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM user_badges WHERE user_id = ?`

	err := GetExecutor(ctx, r.db).GetContext(ctx, &count, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count badges for user %s: %w", userID, err)
	}
	return count, nil
}
