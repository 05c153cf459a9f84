package usecase

import (
	"testing"

	"ai-interviewer/internal/model"

	"github.com/stretchr/testify/assert"
)

func ptr(f float64) *float64 { return &f }

func TestComputeFinalScore(t *testing.T) {
	tests := []struct {
		name    string
		answers []model.Answer
		want    float64
	}{
		{name: "no answers", answers: nil, want: 0},
		{
			name: "single answer",
			answers: []model.Answer{
				{Score: ptr(8)},
			},
			want: 8,
		},
		{
			name: "mean over all answers",
			answers: []model.Answer{
				{Score: ptr(10)},
				{Score: ptr(5)},
				{Score: ptr(0)},
			},
			want: 5,
		},
		{
			name: "strong interview",
			answers: []model.Answer{
				{Score: ptr(8)},
				{Score: ptr(9)},
				{Score: ptr(9)},
			},
			want: 26.0 / 3.0,
		},
		{
			name: "unscored answers count toward the denominator",
			answers: []model.Answer{
				{Score: ptr(9)},
				{Score: nil},
			},
			want: 4.5,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, ComputeFinalScore(tc.answers), 1e-9)
		})
	}
}

func TestDecisionFor(t *testing.T) {
	tests := []struct {
		score float64
		want  model.InterviewDecision
	}{
		{score: 10, want: model.DecisionAccepted},
		{score: 7, want: model.DecisionAccepted},
		{score: 6.99, want: model.DecisionNeedsImprovement},
		{score: 5, want: model.DecisionNeedsImprovement},
		{score: 4.99, want: model.DecisionRejected},
		{score: 0, want: model.DecisionRejected},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, DecisionFor(tc.score), "score %v", tc.score)
	}
}
