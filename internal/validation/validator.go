package validation

import (
	"regexp"
	"strings"

	"mindspark/internal/domain"
	"mindspark/internal/dto"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSubmitAnswerRequest validates the submit answer request
func (v *Validator) ValidateSubmitAnswerRequest(activityID, answer string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(activityID) == "" {
		errors = append(errors, domain.NewMissingFieldError("activity_id"))
	} else if !isValidULID(activityID) {
		errors = append(errors, domain.NewInvalidFormatError("activity_id", activityID))
	}

	if strings.TrimSpace(answer) == "" {
		errors = append(errors, domain.NewMissingFieldError("answer"))
	} else if len(answer) > 2000 {
		errors = append(errors, domain.NewOutOfRangeError("answer", len(answer), 1, 2000))
	}

	return errors
}

// ValidateCompleteActivityRequest validates the optional completion details
func (v *Validator) ValidateCompleteActivityRequest(activityID string, req *dto.CompleteActivityRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(activityID) == "" {
		errors = append(errors, domain.NewMissingFieldError("activity_id"))
	} else if !isValidULID(activityID) {
		errors = append(errors, domain.NewInvalidFormatError("activity_id", activityID))
	}

	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		errors = append(errors, domain.NewOutOfRangeError("rating", *req.Rating, 1, 5))
	}

	if req.TimeSpent != nil && *req.TimeSpent < 0 {
		errors = append(errors, domain.NewOutOfRangeError("time_spent", *req.TimeSpent, 0, 86400))
	}

	return errors
}

// ValidateSetInterestsRequest validates each interest against the known types
func (v *Validator) ValidateSetInterestsRequest(interests []string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	for _, interest := range interests {
		if _, err := domain.ParseActivityType(interest); err != nil {
			errors = append(errors, domain.NewInvalidFormatError("interests", interest))
		}
	}

	return errors
}

// ValidateCreateScheduleRequest validates a new class schedule entry
func (v *Validator) ValidateCreateScheduleRequest(req *dto.CreateScheduleRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.ClassName) == "" {
		errors = append(errors, domain.NewMissingFieldError("class_name"))
	} else if len(req.ClassName) > 100 {
		errors = append(errors, domain.NewOutOfRangeError("class_name", len(req.ClassName), 1, 100))
	}

	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		errors = append(errors, domain.NewOutOfRangeError("day_of_week", req.DayOfWeek, 0, 6))
	}

	if strings.TrimSpace(req.StartTime) == "" {
		errors = append(errors, domain.NewMissingFieldError("start_time"))
	} else if !isValidClockTime(req.StartTime) {
		errors = append(errors, domain.NewInvalidFormatError("start_time", req.StartTime))
	}

	if strings.TrimSpace(req.EndTime) == "" {
		errors = append(errors, domain.NewMissingFieldError("end_time"))
	} else if !isValidClockTime(req.EndTime) {
		errors = append(errors, domain.NewInvalidFormatError("end_time", req.EndTime))
	}

	return errors
}

// ValidateActivityID validates a path parameter holding an activity id
func (v *Validator) ValidateActivityID(activityID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(activityID) == "" {
		errors = append(errors, domain.NewMissingFieldError("activity_id"))
	} else if !isValidULID(activityID) {
		errors = append(errors, domain.NewInvalidFormatError("activity_id", activityID))
	}

	return errors
}

// Helper functions for validation

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	// ULID is 26 characters long, base32 encoded
	if len(s) != 26 {
		return false
	}
	// Check if all characters are valid base32 (Crockford's Base32)
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}

// isValidClockTime checks for a 24-hour HH:MM string
func isValidClockTime(s string) bool {
	validClock := regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
	return validClock.MatchString(s)
}
