package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"mindspark/internal/adapter/actgen"
	"mindspark/internal/config"
	"mindspark/internal/database"
	"mindspark/internal/domain"
	"mindspark/internal/logger"
	"mindspark/internal/repository"

	"go.uber.org/zap"
)

func main() {
	activityType := flag.String("type", "", "activity type to generate (empty generates all types)")
	count := flag.Int("count", 3, "number of activities to generate per type")
	flag.Parse()

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

	generator, err := actgen.NewOllamaActivityGenerator(cfg.LLM.ServerURL, cfg.LLM.Model, l)
	if err != nil {
		l.Fatal("Failed to create activity generator", zap.Error(err))
	}

	var targets []domain.ActivityType
	if *activityType != "" {
		t, err := domain.ParseActivityType(*activityType)
		if err != nil {
			l.Fatal("Unknown activity type", zap.String("type", *activityType))
		}
		targets = []domain.ActivityType{t}
	} else {
		targets = domain.AllActivityTypes()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	existingTitles, err := activityRepo.GetActivityTitles(ctx)
	if err != nil {
		l.Fatal("Failed to load existing activity titles", zap.Error(err))
	}

	saved := 0
	for _, target := range targets {
		l.Info("Generating activities", zap.String("type", string(target)), zap.Int("count", *count))

		candidates, err := generator.GenerateActivityCandidates(ctx, target, existingTitles, *count)
		if err != nil {
			l.Error("Generation failed", zap.String("type", string(target)), zap.Error(err))
			continue
		}

		for _, candidate := range candidates {
			activity := &domain.Activity{
				Title:             candidate.Title,
				Description:       candidate.Description,
				Content:           candidate.Content,
				Type:              target,
				DifficultyLevel:   candidate.DifficultyLevel,
				EstimatedDuration: candidate.EstimatedDuration,
				PointsReward:      candidate.PointsReward,
				Answer:            candidate.Answer,
			}
			if err := activity.Validate(); err != nil {
				l.Warn("Skipping invalid generated activity",
					zap.String("title", candidate.Title),
					zap.Error(err))
				continue
			}
			if err := activityRepo.SaveActivity(ctx, activity); err != nil {
				l.Error("Failed to save generated activity",
					zap.String("title", candidate.Title),
					zap.Error(err))
				continue
			}
			existingTitles = append(existingTitles, activity.Title)
			saved++
		}
	}

	l.Info("Generation finished", zap.Int("saved", saved))
}
