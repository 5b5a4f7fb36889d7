package actgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"mindspark/internal/domain"

	"github.com/tmc/langchaingo/llms"
	ollamaLLM "github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

const generationPrompt = `
You are an expert author of short educational micro-activities for students.
Create %d unique activities of type "%s".

Do not repeat any of these existing titles: [%s].

Each activity must be a JSON object with these fields:
1.  "title": A short, catchy title.
2.  "description": One sentence describing the activity.
3.  "content": The activity itself (the puzzle text, story, question, etc.).
4.  "activity_type": Must be exactly "%s".
5.  "difficulty_level": An integer from 1 to 5.
6.  "estimated_duration": Duration in seconds (60 to 600).
7.  "points_reward": An integer from 5 to 50.
8.  "answer": The expected answer string, or null if the activity has no single answer.

Respond with a single JSON array containing %d such objects and nothing else.
`

// OllamaActivityGenerator implements domain.ActivityGenerationService using an
// Ollama-hosted model via LangchainGo.
type OllamaActivityGenerator struct {
	llm    *ollamaLLM.LLM
	logger *zap.Logger
}

// NewOllamaActivityGenerator creates a new OllamaActivityGenerator.
// It requires the Ollama server URL and model name.
func NewOllamaActivityGenerator(serverURL, modelName string, logger *zap.Logger) (domain.ActivityGenerationService, error) {
	if serverURL == "" {
		return nil, fmt.Errorf("ollama server URL cannot be empty")
	}
	if modelName == "" {
		return nil, fmt.Errorf("ollama model name cannot be empty")
	}

	llm, err := ollamaLLM.New(
		ollamaLLM.WithServerURL(serverURL),
		ollamaLLM.WithModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo Ollama LLM client: %w", err)
	}

	return &OllamaActivityGenerator{llm: llm, logger: logger}, nil
}

// GenerateActivityCandidates prompts the model for a JSON array of activities
// and parses the response, skipping incomplete entries.
func (g *OllamaActivityGenerator) GenerateActivityCandidates(ctx context.Context, activityType domain.ActivityType, existingTitles []string, numActivities int) ([]*domain.NewActivityData, error) {
	if numActivities <= 0 {
		return nil, nil
	}

	prompt := fmt.Sprintf(generationPrompt,
		numActivities, activityType, strings.Join(existingTitles, ", "), activityType, numActivities)

	response, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate activities from LLM: %w", err)
	}

	// Models occasionally wrap the array in markdown fences or prose.
	jsonPayload := extractJSONArray(response)
	if jsonPayload == "" {
		g.logger.Error("LLM response contained no JSON array", zap.String("response", response))
		return nil, fmt.Errorf("LLM response contained no JSON array")
	}

	var candidates []*domain.NewActivityData
	if err := json.Unmarshal([]byte(jsonPayload), &candidates); err != nil {
		g.logger.Error("Failed to unmarshal LLM JSON response", zap.Error(err), zap.String("json_response", jsonPayload))
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	valid := make([]*domain.NewActivityData, 0, len(candidates))
	for _, c := range candidates {
		if c.Title == "" || c.Content == "" {
			g.logger.Warn("LLM generated incomplete activity data", zap.Any("activity_data", c))
			continue
		}
		if _, err := domain.ParseActivityType(c.Type); err != nil {
			g.logger.Warn("LLM generated activity with unknown type", zap.String("activity_type", c.Type))
			continue
		}
		valid = append(valid, c)
	}

	g.logger.Info("Parsed LLM response", zap.Int("num_activities_generated", len(valid)))
	return valid, nil
}

// extractJSONArray returns the outermost JSON array in s, or "" if none exists.
func extractJSONArray(s string) string {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return s[start : end+1]
}

var _ domain.ActivityGenerationService = (*OllamaActivityGenerator)(nil)
