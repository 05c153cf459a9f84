package usecase

import "ai-interviewer/internal/model"

// ComputeFinalScore averages the non-null answer scores over the number of
// answers. An interview with no answers scores 0.
func ComputeFinalScore(answers []model.Answer) float64 {
	if len(answers) == 0 {
		return 0
	}
	var total float64
	for _, a := range answers {
		if a.Score != nil {
			total += *a.Score
		}
	}
	return total / float64(len(answers))
}

// DecisionFor maps a final score on the 0-10 scale to the hiring decision.
func DecisionFor(score float64) model.InterviewDecision {
	switch {
	case score >= 7:
		return model.DecisionAccepted
	case score >= 5:
		return model.DecisionNeedsImprovement
	default:
		return model.DecisionRejected
	}
}
