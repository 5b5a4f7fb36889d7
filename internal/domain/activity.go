package domain

import (
	"time"
)

// ActivityType is the closed set of activity categories. The same set
// drives both the catalog schema and the interest filter, so adding a
// category is a single-point change.
type ActivityType string

const (
	ActivityPuzzle      ActivityType = "puzzle"
	ActivityStory       ActivityType = "story"
	ActivityMath        ActivityType = "math"
	ActivityBrainTeaser ActivityType = "brain_teaser"
	ActivityTrivia      ActivityType = "trivia"
	ActivityQuote       ActivityType = "quote"
)

// AllActivityTypes returns every known activity type in declaration order.
func AllActivityTypes() []ActivityType {
	return []ActivityType{
		ActivityPuzzle,
		ActivityStory,
		ActivityMath,
		ActivityBrainTeaser,
		ActivityTrivia,
		ActivityQuote,
	}
}

// ParseActivityType validates s against the closed enumeration.
func ParseActivityType(s string) (ActivityType, error) {
	for _, t := range AllActivityTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", NewInvalidInterestTypeError(s)
}

// Activity is one immutable catalog item offered to users.
// Answer is nil for content that is not gradable (stories, quotes).
type Activity struct {
	ID                string
	Title             string
	Description       string
	Content           string
	Type              ActivityType
	DifficultyLevel   int // 1-5
	EstimatedDuration int // seconds
	PointsReward      int
	Answer            *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Gradable reports whether the activity carries a canonical answer.
func (a *Activity) Gradable() bool {
	return a.Answer != nil && *a.Answer != ""
}

// Validate validates catalog data before it is inserted.
func (a *Activity) Validate() error {
	var errs ValidationErrors
	if a.Title == "" {
		errs = append(errs, NewMissingFieldError("title"))
	}
	if a.Content == "" {
		errs = append(errs, NewMissingFieldError("content"))
	}
	if _, err := ParseActivityType(string(a.Type)); err != nil {
		errs = append(errs, NewInvalidFormatError("activity_type", string(a.Type)))
	}
	if a.DifficultyLevel < 1 || a.DifficultyLevel > 5 {
		errs = append(errs, NewOutOfRangeError("difficulty_level", a.DifficultyLevel, 1, 5))
	}
	if a.EstimatedDuration <= 0 {
		errs = append(errs, NewInvalidFormatError("estimated_duration", a.EstimatedDuration))
	}
	if a.PointsReward < 0 {
		errs = append(errs, NewInvalidFormatError("points_reward", a.PointsReward))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ActivitySubmission is one graded free-text answer attempt. The log is
// append-only; repeated submissions for the same activity are all kept.
type ActivitySubmission struct {
	ID              string
	UserID          string
	ActivityID      string
	SubmittedAnswer string // raw, un-normalized text
	IsCorrect       bool
	SubmittedAt     time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ActivityCompletion is one finished activity session. PointsEarned is
// copied from the activity's points_reward at completion time.
type ActivityCompletion struct {
	ID           string
	UserID       string
	ActivityID   string
	PointsEarned int
	TimeSpent    *int // seconds
	Rating       *int // 1-5
	CompletedAt  time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
