package dto

import "time"

// ActivityResponse represents an activity in the API response.
// The answer is never included here; it is only revealed after a submission.
// @Description Activity information
type ActivityResponse struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Description       string `json:"description,omitempty"`
	Content           string `json:"content"`
	ActivityType      string `json:"activity_type"`
	DifficultyLevel   int    `json:"difficulty_level"`
	EstimatedDuration int    `json:"estimated_duration"`
	PointsReward      int    `json:"points_reward"`
}

// SubmitAnswerRequest represents a user's answer in the API request.
// @Description Request body for submitting an answer
type SubmitAnswerRequest struct {
	Answer string `json:"answer"`
}

// SubmitAnswerResponse represents the grading result in the API response.
// CorrectAnswer always carries the canonical answer, regardless of outcome.
type SubmitAnswerResponse struct {
	Correct       bool   `json:"is_correct"`
	CorrectAnswer string `json:"correct_answer"`
}

// CompleteActivityRequest represents the optional self-reported details
// attached to a completion.
// @Description Request body for completing an activity
type CompleteActivityRequest struct {
	TimeSpent *int `json:"time_spent,omitempty"`
	Rating    *int `json:"rating,omitempty"`
}

// CompleteActivityResponse confirms a recorded completion.
type CompleteActivityResponse struct {
	Message      string `json:"message"`
	PointsEarned int    `json:"points_earned"`
}

// StatsResponse represents a user's aggregate progress.
// @Description Aggregate user statistics
type StatsResponse struct {
	TotalCompletions int64 `json:"total_completions"`
	TotalPoints      int   `json:"total_points"`
	CurrentLevel     int   `json:"current_level"`
	TotalBadges      int64 `json:"total_badges"`
}

// InterestItem represents a single interest row in the API response.
type InterestItem struct {
	InterestType string `json:"interest_type"`
	IsSelected   bool   `json:"is_selected"`
}

// InterestsResponse is the response for listing a user's interests.
type InterestsResponse struct {
	Interests []InterestItem `json:"interests"`
}

// SetInterestsRequest replaces the user's entire interest selection.
// @Description Request body for replacing interests
type SetInterestsRequest struct {
	Interests []string `json:"interests"`
}

// SetInterestsResponse confirms a replaced selection and echoes it back.
type SetInterestsResponse struct {
	Success   bool           `json:"success"`
	Interests []InterestItem `json:"interests"`
}

// ScheduleItem represents a class schedule entry in the API response.
type ScheduleItem struct {
	ID        string    `json:"id"`
	ClassName string    `json:"class_name"`
	DayOfWeek int       `json:"day_of_week"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SchedulesResponse is the response for listing active class schedules.
type SchedulesResponse struct {
	Schedules []ScheduleItem `json:"schedules"`
}

// CreateScheduleRequest represents a new class schedule entry.
// @Description Request body for adding a class schedule
type CreateScheduleRequest struct {
	ClassName string  `json:"class_name"`
	DayOfWeek int     `json:"day_of_week"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Location  *string `json:"location,omitempty"`
}
