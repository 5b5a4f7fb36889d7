package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Grading clients key off the is_correct field; the wire name is part of
// the API contract.
func TestSubmitAnswerResponseFieldNames(t *testing.T) {
	b, err := json.Marshal(SubmitAnswerResponse{Correct: true, CorrectAnswer: "Paris"})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"is_correct":true,"correct_answer":"Paris"}`, string(b))
}
