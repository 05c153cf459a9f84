package service

import (
	"context"
	"fmt"
	"time"

	"ai-interviewer/internal/config"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const openRouterURL = "https://openrouter.ai/api/v1/chat/completions"

// OpenRouterService is the fallback AI backend, speaking the OpenAI-compatible
// chat completion protocol.
type OpenRouterService struct {
	APIKey string
	Model  string
	client *resty.Client
}

func NewOpenRouterService() *OpenRouterService {
	orConfig := config.LoadOpenRouterConfig()
	return &OpenRouterService{
		APIKey: orConfig.APIKey,
		Model:  orConfig.Model,
		client: resty.New().SetTimeout(90 * time.Second),
	}
}

func (s *OpenRouterService) GenerateQuestions(ctx context.Context, req QuestionRequest) ([]GeneratedQuestion, error) {
	raw, err := s.chat(ctx, "You are an AI generating mock interview questions.", buildQuestionsPrompt(req))
	if err != nil {
		return nil, err
	}
	return parseQuestions(raw)
}

func (s *OpenRouterService) EvaluateAnswers(ctx context.Context, answers []AnswerToEvaluate) ([]AnswerEvaluation, error) {
	if len(answers) == 0 {
		return nil, nil
	}
	raw, err := s.chat(ctx, "You are an AI evaluating mock interview answers.", buildEvaluationPrompt(answers))
	if err != nil {
		return nil, err
	}
	return parseEvaluations(raw)
}

func (s *OpenRouterService) GenerateReport(ctx context.Context, req ReportRequest) (*GeneratedReport, error) {
	raw, err := s.chat(ctx, "You are an AI writing final interview reports.", buildReportPrompt(req))
	if err != nil {
		return nil, err
	}
	return parseReport(raw)
}

func (s *OpenRouterService) chat(ctx context.Context, system, prompt string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model": s.Model,
			"messages": []map[string]string{
				{"role": "system", "content": system},
				{"role": "user", "content": prompt},
			},
		}).
		Post(openRouterURL)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("openrouter returned %s", resp.Status())
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return "", fmt.Errorf("no response from LLM")
	}
	return text, nil
}
