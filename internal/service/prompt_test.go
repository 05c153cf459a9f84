package service

import (
	"testing"

	"ai-interviewer/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripJSONFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `[{"a":1}]`, `[{"a":1}]`},
		{"json fence", "```json\n[{\"a\":1}]\n```", `[{"a":1}]`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n[1,2]\n  ", "[1,2]"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stripJSONFence(tc.in))
		})
	}
}

func TestParseQuestions(t *testing.T) {
	raw := "```json\n" + `[
		{"content": "What is a goroutine?", "type": "Technical", "topics": ["go"], "max_score": 8},
		{"content": "Tell me about a failure.", "type": "weird", "topics": ["teamwork"], "max_score": 0}
	]` + "\n```"

	questions, err := parseQuestions(raw)
	require.NoError(t, err)
	require.Len(t, questions, 2)

	assert.Equal(t, model.QuestionTechnical, questions[0].Type)
	assert.Equal(t, 8.0, questions[0].MaxScore)

	// Unknown types and out-of-range scores fall back to safe defaults.
	assert.Equal(t, model.QuestionTechnical, questions[1].Type)
	assert.Equal(t, 10.0, questions[1].MaxScore)
}

func TestParseQuestionsRejectsGarbage(t *testing.T) {
	_, err := parseQuestions("the model had a bad day")
	assert.Error(t, err)
}

func TestParseEvaluations(t *testing.T) {
	raw := `[{"question_id": 3, "score": 7.5, "feedback": "good depth"}]`
	evaluations, err := parseEvaluations(raw)
	require.NoError(t, err)
	require.Len(t, evaluations, 1)
	assert.Equal(t, uint(3), evaluations[0].QuestionID)
	assert.Equal(t, 7.5, evaluations[0].Score)
	assert.Equal(t, "good depth", evaluations[0].Feedback)
}

func TestParseReport(t *testing.T) {
	raw := `{
		"decision": "accepted",
		"strengths": ["clear communication", "solid fundamentals"],
		"areas_for_improvement": ["system design"],
		"content": "A strong performance overall.",
		"email_subject": "Your interview results",
		"email_body": "<html><body>Congratulations</body></html>"
	}`

	report, err := parseReport(raw)
	require.NoError(t, err)
	assert.Equal(t, "accepted", report.Decision)
	assert.Equal(t, []string{"clear communication", "solid fundamentals"}, report.Strengths)
	assert.Equal(t, []string{"system design"}, report.Improvements)
	assert.Equal(t, "A strong performance overall.", report.Content)
	assert.Equal(t, "Your interview results", report.EmailSubject)
	assert.Contains(t, report.EmailBody, "Congratulations")
}

func TestParseReportRequiresContent(t *testing.T) {
	_, err := parseReport(`{"decision": "accepted"}`)
	assert.Error(t, err)

	_, err = parseReport("not json at all")
	assert.Error(t, err)
}
