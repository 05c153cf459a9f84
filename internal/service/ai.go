package service

import (
	"context"

	"ai-interviewer/internal/model"
)

// GeneratedQuestion is one question as returned by an AI backend, before
// topics are resolved against the catalog.
type GeneratedQuestion struct {
	Content  string             `json:"content"`
	Type     model.QuestionType `json:"type"`
	Topics   []string           `json:"topics"`
	MaxScore float64            `json:"max_score"`
}

type QuestionRequest struct {
	CVText         string
	JobTitle       string
	JobDescription string
	TopicsToFocus  []string
	Count          int
}

type AnswerToEvaluate struct {
	QuestionID uint               `json:"question_id"`
	Question   string             `json:"question"`
	UserAnswer string             `json:"user_answer"`
	MaxScore   float64            `json:"max_score"`
	Type       model.QuestionType `json:"type"`
}

type AnswerEvaluation struct {
	QuestionID uint    `json:"question_id"`
	Score      float64 `json:"score"`
	Feedback   string  `json:"feedback"`
}

type TranscriptEntry struct {
	Question   string   `json:"question"`
	UserAnswer string   `json:"user_answer"`
	Score      *float64 `json:"score,omitempty"`
	Feedback   string   `json:"feedback,omitempty"`
}

type ReportRequest struct {
	UserName     string
	JobTitle     string
	AverageScore float64
	Transcript   []TranscriptEntry
}

type GeneratedReport struct {
	Decision     string
	Strengths    []string
	Improvements []string
	Content      string
	EmailSubject string
	EmailBody    string
}

// AIServiceInterface is the contract the orchestration layer consumes; Gemini
// and OpenRouter both implement it.
type AIServiceInterface interface {
	GenerateQuestions(ctx context.Context, req QuestionRequest) ([]GeneratedQuestion, error)
	EvaluateAnswers(ctx context.Context, answers []AnswerToEvaluate) ([]AnswerEvaluation, error)
	GenerateReport(ctx context.Context, req ReportRequest) (*GeneratedReport, error)
}

// EmbeddingServiceInterface is optional; providers without embedding support
// return ErrEmbeddingUnsupported and callers skip the side effect.
type EmbeddingServiceInterface interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}
