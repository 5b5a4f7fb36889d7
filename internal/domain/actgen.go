package domain

import "context"

// NewActivityData holds a generated activity candidate before it is persisted.
type NewActivityData struct {
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	Content           string  `json:"content"`
	Type              string  `json:"activity_type"`
	DifficultyLevel   int     `json:"difficulty_level"`
	EstimatedDuration int     `json:"estimated_duration"`
	PointsReward      int     `json:"points_reward"`
	Answer            *string `json:"answer"`
}

// ActivityGenerationService defines the interface for generating activity candidates.
type ActivityGenerationService interface {
	// GenerateActivityCandidates generates a specified number of activity
	// candidates of the given type, avoiding titles already in the catalog.
	GenerateActivityCandidates(
		ctx context.Context,
		activityType ActivityType,
		existingTitles []string,
		numActivities int,
	) ([]*NewActivityData, error)
}
