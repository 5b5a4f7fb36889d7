package repository

import (
	"context"
	"testing"
	"time"

	"mindspark/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestGetSelectedTypes(t *testing.T) {
	ctx := context.Background()

	t.Run("returns only selected types", func(t *testing.T) {
		db, mock := setupTestDB(t)
		defer db.Close()
		repo := NewSQLXInterestRepository(db)

		rows := sqlmock.NewRows([]string{"interest_type"}).
			AddRow("math").
			AddRow("puzzle")
		mock.ExpectQuery(`SELECT interest_type FROM user_interests\s+WHERE user_id = \? AND is_selected = 1`).
			WithArgs("user-1").
			WillReturnRows(rows)

		types, err := repo.GetSelectedTypes(ctx, "user-1")

		assert.NoError(t, err)
		assert.Equal(t, []domain.ActivityType{domain.ActivityMath, domain.ActivityPuzzle}, types)
	})

	t.Run("no selection yields an empty slice", func(t *testing.T) {
		db, mock := setupTestDB(t)
		defer db.Close()
		repo := NewSQLXInterestRepository(db)

		mock.ExpectQuery(`SELECT interest_type FROM user_interests`).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{"interest_type"}))

		types, err := repo.GetSelectedTypes(ctx, "user-1")

		assert.NoError(t, err)
		assert.Empty(t, types)
	})
}

func TestReplaceInterests(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes everything then inserts the new set", func(t *testing.T) {
		db, mock := setupTestDB(t)
		defer db.Close()
		repo := NewSQLXInterestRepository(db)

		mock.ExpectExec(`DELETE FROM user_interests WHERE user_id = \?`).
			WithArgs("user-1").
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(`INSERT INTO user_interests`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`INSERT INTO user_interests`).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.ReplaceInterests(ctx, "user-1", []domain.ActivityType{domain.ActivityMath, domain.ActivityStory})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("an empty set only deletes", func(t *testing.T) {
		db, mock := setupTestDB(t)
		defer db.Close()
		repo := NewSQLXInterestRepository(db)

		mock.ExpectExec(`DELETE FROM user_interests WHERE user_id = \?`).
			WithArgs("user-1").
			WillReturnResult(sqlmock.NewResult(0, 2))

		err := repo.ReplaceInterests(ctx, "user-1", nil)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetInterestsByUserID(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXInterestRepository(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "interest_type", "is_selected", "created_at", "updated_at"}).
		AddRow("int-1", "user-1", "math", true, now, now).
		AddRow("int-2", "user-1", "story", false, now, now)
	mock.ExpectQuery(`SELECT id, user_id, interest_type, is_selected, created_at, updated_at\s+FROM user_interests WHERE user_id = \?`).
		WithArgs("user-1").
		WillReturnRows(rows)

	interests, err := repo.GetInterestsByUserID(ctx, "user-1")

	assert.NoError(t, err)
	assert.Len(t, interests, 2)
	assert.Equal(t, domain.ActivityMath, interests[0].InterestType)
	assert.False(t, interests[1].IsSelected)
}
