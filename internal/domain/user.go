package domain

import "time"

// User is an account authenticated through Google OAuth.
type User struct {
	ID                string
	GoogleID          string
	Email             string
	Name              string
	ProfilePictureURL string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time
}

// UserProfile is one account's progression state. Exactly one profile
// exists per user id; it is created lazily on first access with zero
// points and level 1. Level is never recomputed by the completion path.
type UserProfile struct {
	ID                   string
	UserID               string
	Name                 string
	Timezone             string
	NotificationsEnabled bool
	Points               int
	Level                int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// UserInterest is a user's opt-in to one activity type. The selection
// set is replaced wholesale on each save, never partially patched.
type UserInterest struct {
	ID           string
	UserID       string
	InterestType ActivityType
	IsSelected   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ClassSchedule is a recurring weekly class block. Rows are soft-deleted
// via IsActive, never physically removed.
type ClassSchedule struct {
	ID        string
	UserID    string
	ClassName string
	DayOfWeek int    // 0-6, Sunday-Saturday
	StartTime string // HH:MM
	EndTime   string // HH:MM
	Location  *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
