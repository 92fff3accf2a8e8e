package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuizSubmissionPassed(t *testing.T) {
	tests := []struct {
		score  int
		passed bool
	}{
		{0, false},
		{5, false},
		{7, false},
		{8, true},
		{9, true},
		{10, true},
	}

	for _, tt := range tests {
		q := &QuizSubmission{Score: tt.score}
		assert.Equal(t, tt.passed, q.Passed(), "score %d", tt.score)
	}
}

func TestQuizSubmissionScoreTier(t *testing.T) {
	tests := []struct {
		score int
		tier  string
	}{
		{0, "low"},
		{4, "low"},
		{5, "medium"},
		{7, "medium"},
		{8, "high"},
		{10, "high"},
	}

	for _, tt := range tests {
		q := &QuizSubmission{Score: tt.score}
		assert.Equal(t, tt.tier, q.ScoreTier(), "score %d", tt.score)
	}
}

func TestSetAnswersPadsAndTruncates(t *testing.T) {
	var q QuizSubmission

	q.SetAnswers([]string{"a", "b", "c"})
	assert.Equal(t, []string{"a", "b", "c", "", "", "", "", "", "", ""}, q.Answers())

	q.SetAnswers([]string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"})
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}, q.Answers())
}
