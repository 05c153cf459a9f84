package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"ai-interviewer/internal/model"

	"github.com/tidwall/gjson"
)

func buildQuestionsPrompt(req QuestionRequest) string {
	focus := "none specified"
	if len(req.TopicsToFocus) > 0 {
		focus = strings.Join(req.TopicsToFocus, ", ")
	}
	return fmt.Sprintf(`You are an expert technical recruiter preparing a mock interview.
Generate exactly %d interview questions for the candidate below.
Mix "technical", "behavioral" and "situational" questions; the type must be lower case.
For each question assign a max_score between 1 and 10 and list the skill topics it probes.

Job Title: %s
Job Description: %s
Topics to focus on: %s

Candidate CV:
%s

Return ONLY a JSON array with this shape, no other text or formatting:
[{"content": "...", "type": "technical", "topics": ["go", "sql"], "max_score": 8}]`,
		req.Count, req.JobTitle, req.JobDescription, focus, req.CVText)
}

func buildEvaluationPrompt(answers []AnswerToEvaluate) string {
	payload, _ := json.Marshal(answers)
	return fmt.Sprintf(`You are an expert, fair technical interviewer evaluating a mock interview transcript.
For every entry below, score the user_answer between 0 and its max_score and write one or two
sentences of constructive feedback. Keep the question_id values exactly as given.

Transcript entries:
%s

Return ONLY a JSON array with this shape, no other text or formatting:
[{"question_id": 1, "score": 7.5, "feedback": "..."}]`, payload)
}

func buildReportPrompt(req ReportRequest) string {
	transcript, _ := json.Marshal(req.Transcript)
	return fmt.Sprintf(`You are a senior hiring manager writing the final report for a mock interview.

Candidate: %s
Role: %s
Average score: %.2f (scale 0-10)

Transcript:
%s

Write a decision ("accepted", "rejected" or "needs_improvement"), 1-3 strengths,
1-3 areas for improvement, a narrative report, and a candidate email whose tone
matches the decision. The email body must be HTML.

Return ONLY a JSON object with this shape, no other text or formatting:
{"decision": "...", "strengths": ["..."], "areas_for_improvement": ["..."],
"content": "...", "email_subject": "...", "email_body": "<html>...</html>"}`,
		req.UserName, req.JobTitle, req.AverageScore, transcript)
}

// stripJSONFence removes a ```json ... ``` wrapper that LLMs like to add
// despite instructions.
func stripJSONFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

func parseQuestions(raw string) ([]GeneratedQuestion, error) {
	raw = stripJSONFence(raw)
	var questions []GeneratedQuestion
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		return nil, fmt.Errorf("failed to parse generated questions: %w", err)
	}
	for i := range questions {
		questions[i].Type = model.QuestionType(strings.ToLower(string(questions[i].Type)))
		switch questions[i].Type {
		case model.QuestionTechnical, model.QuestionBehavioral, model.QuestionSituational:
		default:
			questions[i].Type = model.QuestionTechnical
		}
		if questions[i].MaxScore < 1 || questions[i].MaxScore > 10 {
			questions[i].MaxScore = 10
		}
	}
	return questions, nil
}

func parseEvaluations(raw string) ([]AnswerEvaluation, error) {
	raw = stripJSONFence(raw)
	var evaluations []AnswerEvaluation
	if err := json.Unmarshal([]byte(raw), &evaluations); err != nil {
		return nil, fmt.Errorf("failed to parse answer evaluations: %w", err)
	}
	return evaluations, nil
}

func parseReport(raw string) (*GeneratedReport, error) {
	raw = stripJSONFence(raw)
	if !gjson.Valid(raw) {
		return nil, fmt.Errorf("report response is not valid JSON")
	}
	report := &GeneratedReport{
		Decision:     gjson.Get(raw, "decision").String(),
		Content:      gjson.Get(raw, "content").String(),
		EmailSubject: gjson.Get(raw, "email_subject").String(),
		EmailBody:    gjson.Get(raw, "email_body").String(),
	}
	for _, s := range gjson.Get(raw, "strengths").Array() {
		report.Strengths = append(report.Strengths, s.String())
	}
	for _, s := range gjson.Get(raw, "areas_for_improvement").Array() {
		report.Improvements = append(report.Improvements, s.String())
	}
	if report.Content == "" {
		return nil, fmt.Errorf("report response has no content")
	}
	return report, nil
}
