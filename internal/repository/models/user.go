package models

import (
	"database/sql"
	"time"
)

// User represents an OAuth-backed account row.
type User struct {
	ID                string         `db:"id"` // ULID
	GoogleID          string         `db:"google_id"`
	Email             string         `db:"email"`
	Name              sql.NullString `db:"name"`
	ProfilePictureURL sql.NullString `db:"profile_picture_url"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
	DeletedAt         sql.NullTime   `db:"deleted_at"`
}

// UserProfile represents a user's progression-state row.
type UserProfile struct {
	ID                   string         `db:"id"` // ULID
	UserID               string         `db:"user_id"`
	Name                 sql.NullString `db:"name"`
	Timezone             string         `db:"timezone"`
	NotificationsEnabled bool           `db:"notifications_enabled"`
	Points               int            `db:"points"`
	Level                int            `db:"level"`
	CreatedAt            time.Time      `db:"created_at"`
	UpdatedAt            time.Time      `db:"updated_at"`
}

// UserInterest represents one activity-type selection row.
type UserInterest struct {
	ID           string    `db:"id"` // ULID
	UserID       string    `db:"user_id"`
	InterestType string    `db:"interest_type"`
	IsSelected   bool      `db:"is_selected"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// ClassSchedule represents a recurring weekly class block row.
type ClassSchedule struct {
	ID        string         `db:"id"` // ULID
	UserID    string         `db:"user_id"`
	ClassName string         `db:"class_name"`
	DayOfWeek int            `db:"day_of_week"`
	StartTime string         `db:"start_time"`
	EndTime   string         `db:"end_time"`
	Location  sql.NullString `db:"location"`
	IsActive  bool           `db:"is_active"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}
