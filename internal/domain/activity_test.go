package domain

import (
	"errors"
	"testing"
)

func TestParseActivityType(t *testing.T) {
	for _, at := range AllActivityTypes() {
		parsed, err := ParseActivityType(string(at))
		if err != nil {
			t.Errorf("ParseActivityType(%q) returned error: %v", at, err)
		}
		if parsed != at {
			t.Errorf("ParseActivityType(%q) = %q, want %q", at, parsed, at)
		}
	}

	for _, bad := range []string{"", "astrology", "Math", "PUZZLE", "math "} {
		if _, err := ParseActivityType(bad); err == nil {
			t.Errorf("ParseActivityType(%q) accepted an unknown type", bad)
		} else {
			var domainErr *DomainError
			if !errors.As(err, &domainErr) || domainErr.Code != CodeInvalidInterestType {
				t.Errorf("ParseActivityType(%q) error = %v, want code %s", bad, err, CodeInvalidInterestType)
			}
		}
	}
}

func TestActivityGradable(t *testing.T) {
	answer := "Paris"
	empty := ""

	tests := []struct {
		name   string
		answer *string
		want   bool
	}{
		{"with answer", &answer, true},
		{"nil answer", nil, false},
		{"empty answer", &empty, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Activity{Answer: tt.answer}
			if got := a.Gradable(); got != tt.want {
				t.Errorf("Gradable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestActivityValidate(t *testing.T) {
	answer := "Paris"
	valid := func() *Activity {
		return &Activity{
			Title:             "Capital Knowledge",
			Description:       "A quick geography check",
			Content:           "What is the capital of France?",
			Type:              ActivityTrivia,
			DifficultyLevel:   2,
			EstimatedDuration: 60,
			PointsReward:      10,
			Answer:            &answer,
		}
	}

	tests := []struct {
		name      string
		mutate    func(*Activity)
		wantField string
	}{
		{"valid", func(a *Activity) {}, ""},
		{"missing title", func(a *Activity) { a.Title = "" }, "title"},
		{"missing content", func(a *Activity) { a.Content = "" }, "content"},
		{"unknown type", func(a *Activity) { a.Type = "astrology" }, "activity_type"},
		{"difficulty too low", func(a *Activity) { a.DifficultyLevel = 0 }, "difficulty_level"},
		{"difficulty too high", func(a *Activity) { a.DifficultyLevel = 6 }, "difficulty_level"},
		{"zero duration", func(a *Activity) { a.EstimatedDuration = 0 }, "estimated_duration"},
		{"negative reward", func(a *Activity) { a.PointsReward = -5 }, "points_reward"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valid()
			tt.mutate(a)
			err := a.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			var errs ValidationErrors
			if !errors.As(err, &errs) {
				t.Fatalf("Validate() error type = %T, want ValidationErrors", err)
			}
			found := false
			for _, ve := range errs {
				if ve.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("Validate() errors %v do not mention field %q", errs, tt.wantField)
			}
		})
	}
}
