package main

import (
	"context"
	"fmt"

	"mindspark/internal/config"
	"mindspark/internal/database"
	"mindspark/internal/domain"
	"mindspark/internal/logger"
	"mindspark/internal/repository"

	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }

// seedActivities is the built-in starter catalog. Activities without an
// answer are completion-only; the rest are gradable.
var seedActivities = []domain.Activity{
	{
		Title:             "The Missing Number",
		Description:       "Find the number that completes the sequence.",
		Content:           "What number comes next: 2, 6, 12, 20, 30, ?",
		Type:              domain.ActivityPuzzle,
		DifficultyLevel:   2,
		EstimatedDuration: 120,
		PointsReward:      10,
		Answer:            strPtr("42"),
	},
	{
		Title:             "Word Ladder",
		Description:       "Change one letter at a time to turn COLD into WARM.",
		Content:           "COLD -> CORD -> ? -> WARD -> WARM. Which word fills the gap?",
		Type:              domain.ActivityPuzzle,
		DifficultyLevel:   3,
		EstimatedDuration: 180,
		PointsReward:      15,
		Answer:            strPtr("ward"),
	},
	{
		Title:             "The Lighthouse Keeper",
		Description:       "A two-minute story about persistence.",
		Content:           "Every night for forty years, Elena climbed the spiral stairs to light the lamp. Ships she would never meet found their way home because she refused to miss a single night...",
		Type:              domain.ActivityStory,
		DifficultyLevel:   1,
		EstimatedDuration: 120,
		PointsReward:      5,
	},
	{
		Title:             "The Paper Crane",
		Description:       "A short story about small acts of kindness.",
		Content:           "Mr. Ito left a folded paper crane on a different desk each morning. Nobody knew who did it until the day he was absent, and twenty-eight cranes appeared on his...",
		Type:              domain.ActivityStory,
		DifficultyLevel:   1,
		EstimatedDuration: 150,
		PointsReward:      5,
	},
	{
		Title:             "Quick Fractions",
		Description:       "Add the fractions and simplify.",
		Content:           "What is 1/4 + 1/6, written in lowest terms?",
		Type:              domain.ActivityMath,
		DifficultyLevel:   2,
		EstimatedDuration: 90,
		PointsReward:      10,
		Answer:            strPtr("5/12"),
	},
	{
		Title:             "Percent Power",
		Description:       "A quick percentage drill.",
		Content:           "A jacket costs $80 and is discounted 15%. What is the sale price in dollars?",
		Type:              domain.ActivityMath,
		DifficultyLevel:   2,
		EstimatedDuration: 90,
		PointsReward:      10,
		Answer:            strPtr("68"),
	},
	{
		Title:             "The Two Doors",
		Description:       "A classic logic riddle.",
		Content:           "One door leads to safety, one to danger. One guard always lies, one always tells the truth. You may ask one guard one question. What single word describes the kind of question you must ask? (Hint: it involves the other guard.)",
		Type:              domain.ActivityBrainTeaser,
		DifficultyLevel:   4,
		EstimatedDuration: 300,
		PointsReward:      25,
		Answer:            strPtr("indirect"),
	},
	{
		Title:             "Forward and Backward",
		Description:       "A wordplay teaser.",
		Content:           "What 5-letter word reads the same forward and backward and means a small boat?",
		Type:              domain.ActivityBrainTeaser,
		DifficultyLevel:   3,
		EstimatedDuration: 180,
		PointsReward:      15,
		Answer:            strPtr("kayak"),
	},
	{
		Title:             "Capital Knowledge",
		Description:       "World geography trivia.",
		Content:           "What is the capital city of France?",
		Type:              domain.ActivityTrivia,
		DifficultyLevel:   1,
		EstimatedDuration: 60,
		PointsReward:      5,
		Answer:            strPtr("Paris"),
	},
	{
		Title:             "Ocean Giants",
		Description:       "Animal kingdom trivia.",
		Content:           "What is the largest animal ever known to have lived on Earth?",
		Type:              domain.ActivityTrivia,
		DifficultyLevel:   2,
		EstimatedDuration: 60,
		PointsReward:      10,
		Answer:            strPtr("blue whale"),
	},
	{
		Title:             "On Beginnings",
		Description:       "A quote to reflect on.",
		Content:           "\"The secret of getting ahead is getting started.\" - Mark Twain. Take a moment to think about one thing you have been putting off.",
		Type:              domain.ActivityQuote,
		DifficultyLevel:   1,
		EstimatedDuration: 60,
		PointsReward:      5,
	},
	{
		Title:             "On Curiosity",
		Description:       "A quote to reflect on.",
		Content:           "\"I have no special talent. I am only passionately curious.\" - Albert Einstein. What are you curious about today?",
		Type:              domain.ActivityQuote,
		DifficultyLevel:   1,
		EstimatedDuration: 60,
		PointsReward:      5,
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		return
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		return
	}
	defer logger.Sync()
	l := logger.Get()

	db, err := database.NewSQLXDB(cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	activityRepo := repository.NewSQLXActivityRepository(db)
	ctx := context.Background()

	seeded := 0
	for i := range seedActivities {
		activity := seedActivities[i]
		if err := activity.Validate(); err != nil {
			l.Fatal("Seed activity failed validation",
				zap.String("title", activity.Title),
				zap.Error(err))
		}
		if err := activityRepo.SaveActivity(ctx, &activity); err != nil {
			l.Error("Failed to seed activity",
				zap.String("title", activity.Title),
				zap.Error(err))
			continue
		}
		seeded++
	}

	l.Info("Seeding finished",
		zap.Int("seeded", seeded),
		zap.Int("total", len(seedActivities)))
}
