package domain

import "context"

// ActivityRepository provides read access to the immutable activity
// catalog plus the append-only submission and completion logs.
// Not-found lookups return (nil, nil); services decide the error.
type ActivityRepository interface {
	GetActivityByID(ctx context.Context, id string) (*Activity, error)
	// GetRandomActivity picks one row uniformly at random. When types is
	// non-empty the pool is restricted to those activity types; an empty
	// pool yields (nil, nil) with no fallback to the full catalog.
	GetRandomActivity(ctx context.Context, types []ActivityType) (*Activity, error)
	SaveActivity(ctx context.Context, activity *Activity) error
	// GetActivityTitles lists every catalog title; the generator uses it
	// to steer new candidates away from duplicates.
	GetActivityTitles(ctx context.Context) ([]string, error)
	SaveSubmission(ctx context.Context, submission *ActivitySubmission) error
	SaveCompletion(ctx context.Context, completion *ActivityCompletion) error
	CountCompletionsByUserID(ctx context.Context, userID string) (int64, error)
}

// ProfileRepository persists per-user progression state.
type ProfileRepository interface {
	GetProfileByUserID(ctx context.Context, userID string) (*UserProfile, error)
	CreateProfile(ctx context.Context, profile *UserProfile) error
	UpdateProfile(ctx context.Context, profile *UserProfile) error
	// AddPoints credits the profile's point balance in a single atomic
	// UPDATE expression, avoiding a read-modify-write race between
	// concurrent completions.
	AddPoints(ctx context.Context, userID string, points int) error
}

// InterestRepository persists a user's activity-type selections.
type InterestRepository interface {
	GetInterestsByUserID(ctx context.Context, userID string) ([]UserInterest, error)
	GetSelectedTypes(ctx context.Context, userID string) ([]ActivityType, error)
	// ReplaceInterests deletes the user's entire selection set and
	// inserts the given types. Callers run it inside a transaction.
	ReplaceInterests(ctx context.Context, userID string, types []ActivityType) error
}

// ScheduleRepository persists recurring weekly class blocks.
type ScheduleRepository interface {
	GetActiveByUserID(ctx context.Context, userID string) ([]ClassSchedule, error)
	CreateSchedule(ctx context.Context, schedule *ClassSchedule) error
	// DeactivateSchedule soft-deletes the row, scoped to the owning user.
	DeactivateSchedule(ctx context.Context, id, userID string) error
}

// BadgeRepository counts earned badges. Nothing in the service awards
// badges yet; the count feeds the stats aggregate.
type BadgeRepository interface {
	CountBadgesByUserID(ctx context.Context, userID string) (int64, error)
}

// UserRepository persists OAuth-backed accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByGoogleID(ctx context.Context, googleID string) (*User, error)
	GetUserByID(ctx context.Context, userID string) (*User, error)
	UpdateUser(ctx context.Context, user *User) error
}

// TransactionManager runs fn inside a single database transaction.
// Repositories called with the derived context share that transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
