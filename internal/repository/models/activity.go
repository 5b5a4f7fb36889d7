package models

import (
	"database/sql"
	"time"
)

// Activity mirrors one row of the activities catalog table.
type Activity struct {
	ID                string         `db:"id"` // ULID
	Title             string         `db:"title"`
	Description       string         `db:"description"`
	Content           string         `db:"content"`
	ActivityType      string         `db:"activity_type"`
	DifficultyLevel   int            `db:"difficulty_level"`
	EstimatedDuration int            `db:"estimated_duration"`
	PointsReward      int            `db:"points_reward"`
	Answer            sql.NullString `db:"answer"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

// ActivitySubmission mirrors one row of the append-only submission log.
type ActivitySubmission struct {
	ID              string    `db:"id"` // ULID
	UserID          string    `db:"user_id"`
	ActivityID      string    `db:"activity_id"`
	SubmittedAnswer string    `db:"submitted_answer"`
	IsCorrect       bool      `db:"is_correct"`
	SubmittedAt     time.Time `db:"submitted_at"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// ActivityCompletion mirrors one row of the append-only completion log.
type ActivityCompletion struct {
	ID           string        `db:"id"` // ULID
	UserID       string        `db:"user_id"`
	ActivityID   string        `db:"activity_id"`
	PointsEarned int           `db:"points_earned"`
	TimeSpent    sql.NullInt64 `db:"time_spent"`
	Rating       sql.NullInt64 `db:"rating"`
	CompletedAt  time.Time     `db:"completed_at"`
	CreatedAt    time.Time     `db:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at"`
}
