package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"mindspark/internal/domain"
	"mindspark/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

// setupTestDB creates a new sqlx.DB instance and sqlmock for repository testing.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func activityRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "description", "content", "activity_type",
		"difficulty_level", "estimated_duration", "points_reward", "answer",
		"created_at", "updated_at",
	})
}

func TestGetRandomActivity(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("without filter samples the whole catalog", func(t *testing.T) {
		db, mock := setupTestDB(t)
		defer db.Close()
		repo := NewSQLXActivityRepository(db)

		rows := activityRows().AddRow(
			"act-1", "Quick Fractions", "desc", "What is 1/4 + 1/6?", "math",
			2, 90, 10, sql.NullString{String: "5/12", Valid: true}, now, now,
		)
		mock.ExpectQuery(`SELECT (.+) FROM activities ORDER BY RANDOM\(\) LIMIT 1`).
			WillReturnRows(rows)

		activity, err := repo.GetRandomActivity(ctx, nil)

		assert.NoError(t, err)
		assert.Equal(t, "act-1", activity.ID)
		assert.Equal(t, domain.ActivityMath, activity.Type)
		assert.Equal(t, "5/12", *activity.Answer)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("with filter restricts by activity_type", func(t *testing.T) {
		db, mock := setupTestDB(t)
		defer db.Close()
		repo := NewSQLXActivityRepository(db)

		rows := activityRows().AddRow(
			"act-2", "The Two Doors", "desc", "riddle text", "brain_teaser",
			4, 300, 25, sql.NullString{}, now, now,
		)
		mock.ExpectQuery(`SELECT (.+) FROM activities WHERE activity_type IN \(\?, \?\) ORDER BY RANDOM\(\) LIMIT 1`).
			WithArgs("brain_teaser", "puzzle").
			WillReturnRows(rows)

		activity, err := repo.GetRandomActivity(ctx, []domain.ActivityType{domain.ActivityBrainTeaser, domain.ActivityPuzzle})

		assert.NoError(t, err)
		assert.Equal(t, "act-2", activity.ID)
		assert.Nil(t, activity.Answer)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty pool returns nil without error", func(t *testing.T) {
		db, mock := setupTestDB(t)
		defer db.Close()
		repo := NewSQLXActivityRepository(db)

		mock.ExpectQuery(`SELECT (.+) FROM activities WHERE activity_type IN \(\?\) ORDER BY RANDOM\(\) LIMIT 1`).
			WithArgs("quote").
			WillReturnError(sql.ErrNoRows)

		activity, err := repo.GetRandomActivity(ctx, []domain.ActivityType{domain.ActivityQuote})

		assert.NoError(t, err)
		assert.Nil(t, activity)
	})
}

func TestGetActivityByID(t *testing.T) {
	ctx := context.Background()

	t.Run("missing row is (nil, nil)", func(t *testing.T) {
		db, mock := setupTestDB(t)
		defer db.Close()
		repo := NewSQLXActivityRepository(db)

		mock.ExpectQuery(`SELECT (.+) FROM activities WHERE id = \?`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		activity, err := repo.GetActivityByID(ctx, "missing")

		assert.NoError(t, err)
		assert.Nil(t, activity)
	})
}

func TestSaveSubmission(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns an id and timestamps", func(t *testing.T) {
		db, mock := setupTestDB(t)
		defer db.Close()
		repo := NewSQLXActivityRepository(db)

		mock.ExpectExec(`INSERT INTO user_activity_submissions`).
			WillReturnResult(sqlmock.NewResult(1, 1))

		submission := &domain.ActivitySubmission{
			UserID:          "user-1",
			ActivityID:      "act-1",
			SubmittedAnswer: "  Paris  ",
			IsCorrect:       true,
		}
		err := repo.SaveSubmission(ctx, submission)

		assert.NoError(t, err)
		assert.NotEmpty(t, submission.ID)
		assert.False(t, submission.SubmittedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetActivityTitles(t *testing.T) {
	ctx := context.Background()

	t.Run("lists every catalog title", func(t *testing.T) {
		db, mock := setupTestDB(t)
		defer db.Close()
		repo := NewSQLXActivityRepository(db)

		rows := sqlmock.NewRows([]string{"title"}).
			AddRow("Capital Knowledge").
			AddRow("Quick Fractions")
		mock.ExpectQuery(`SELECT title FROM activities ORDER BY title`).
			WillReturnRows(rows)

		titles, err := repo.GetActivityTitles(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []string{"Capital Knowledge", "Quick Fractions"}, titles)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty catalog yields no titles", func(t *testing.T) {
		db, mock := setupTestDB(t)
		defer db.Close()
		repo := NewSQLXActivityRepository(db)

		mock.ExpectQuery(`SELECT title FROM activities ORDER BY title`).
			WillReturnRows(sqlmock.NewRows([]string{"title"}))

		titles, err := repo.GetActivityTitles(ctx)

		assert.NoError(t, err)
		assert.Empty(t, titles)
	})
}

func TestCountCompletionsByUserID(t *testing.T) {
	ctx := context.Background()
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXActivityRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM user_activity_completions WHERE user_id = \?`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountCompletionsByUserID(ctx, "user-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestActivityConverters(t *testing.T) {
	now := time.Now().Truncate(time.Second)

	t.Run("round trip with answer", func(t *testing.T) {
		model := &models.Activity{
			ID:                "act-1",
			Title:             "Capital Knowledge",
			Description:       "desc",
			Content:           "What is the capital city of France?",
			ActivityType:      "trivia",
			DifficultyLevel:   1,
			EstimatedDuration: 60,
			PointsReward:      5,
			Answer:            sql.NullString{String: "Paris", Valid: true},
			CreatedAt:         now,
			UpdatedAt:         now,
		}

		d := toDomainActivity(model)
		assert.Equal(t, domain.ActivityTrivia, d.Type)
		assert.Equal(t, "Paris", *d.Answer)

		back := fromDomainActivity(d)
		assert.Equal(t, model.Answer, back.Answer)
		assert.Equal(t, model.ActivityType, back.ActivityType)
	})

	t.Run("null answer maps to nil pointer", func(t *testing.T) {
		model := &models.Activity{
			ID:           "act-2",
			Title:        "On Curiosity",
			Content:      "quote text",
			ActivityType: "quote",
			Answer:       sql.NullString{},
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		d := toDomainActivity(model)
		assert.Nil(t, d.Answer)

		back := fromDomainActivity(d)
		assert.False(t, back.Answer.Valid)
	})
}
