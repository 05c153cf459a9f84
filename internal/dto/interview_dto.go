package dto

import (
	"encoding/json"
	"time"

	"ai-interviewer/internal/model"
)

type AnswerDTO struct {
	ID         uint      `json:"id"`
	QuestionID uint      `json:"question_id"`
	UserAnswer string    `json:"user_answer"`
	Score      *float64  `json:"score,omitempty"`
	Feedback   *string   `json:"feedback,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type QuestionDTO struct {
	ID       uint       `json:"id"`
	Content  string     `json:"content"`
	Type     string     `json:"type"`
	MaxScore float64    `json:"max_score"`
	Order    int        `json:"order"`
	Topics   []string   `json:"topics,omitempty"`
	Answer   *AnswerDTO `json:"answer,omitempty"`
}

type ReportDTO struct {
	ID              uint      `json:"id"`
	Content         string    `json:"content"`
	Strengths       []string  `json:"strengths,omitempty"`
	Improvements    []string  `json:"areas_for_improvement,omitempty"`
	SentToCandidate bool      `json:"sent_to_candidate"`
	CreatedAt       time.Time `json:"created_at"`
}

type InterviewDTO struct {
	ID             uint          `json:"id"`
	UserID         uint          `json:"user_id"`
	CVID           uint          `json:"cv_id"`
	JobTitle       string        `json:"job_title"`
	JobDescription string        `json:"job_description,omitempty"`
	TopicsToFocus  []string      `json:"topics_to_focus,omitempty"`
	Mode           string        `json:"mode"`
	Status         string        `json:"status"`
	FinalScore     *float64      `json:"final_score,omitempty"`
	Decision       string        `json:"decision,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	FinishedAt     *time.Time    `json:"finished_at,omitempty"`
	Questions      []QuestionDTO `json:"questions,omitempty"`
	Report         *ReportDTO    `json:"report,omitempty"`
}

func NewAnswerDTO(a *model.Answer) *AnswerDTO {
	if a == nil {
		return nil
	}
	return &AnswerDTO{
		ID:         a.ID,
		QuestionID: a.QuestionID,
		UserAnswer: a.UserAnswer,
		Score:      a.Score,
		Feedback:   a.Feedback,
		CreatedAt:  a.CreatedAt,
	}
}

func NewQuestionDTO(q *model.Question) QuestionDTO {
	topics := make([]string, 0, len(q.Topics))
	for _, t := range q.Topics {
		topics = append(topics, t.Name)
	}
	return QuestionDTO{
		ID:       q.ID,
		Content:  q.Content,
		Type:     string(q.Type),
		MaxScore: q.MaxScore,
		Order:    q.Order,
		Topics:   topics,
		Answer:   NewAnswerDTO(q.Answer),
	}
}

func NewReportDTO(r *model.Report) *ReportDTO {
	if r == nil {
		return nil
	}
	dto := &ReportDTO{
		ID:              r.ID,
		Content:         r.Content,
		SentToCandidate: r.SentToCandidate,
		CreatedAt:       r.CreatedAt,
	}
	_ = json.Unmarshal(r.Strengths, &dto.Strengths)
	_ = json.Unmarshal(r.Improvements, &dto.Improvements)
	return dto
}

func NewInterviewDTO(i *model.Interview) InterviewDTO {
	dto := InterviewDTO{
		ID:             i.ID,
		UserID:         i.UserID,
		CVID:           i.CVID,
		JobTitle:       i.JobTitle,
		JobDescription: i.JobDescription,
		Mode:           string(i.Mode),
		Status:         string(i.Status),
		FinalScore:     i.FinalScore,
		Decision:       string(i.Decision),
		CreatedAt:      i.CreatedAt,
		FinishedAt:     i.FinishedAt,
		Report:         NewReportDTO(i.Report),
	}
	_ = json.Unmarshal(i.TopicsToFocus, &dto.TopicsToFocus)
	for idx := range i.Questions {
		dto.Questions = append(dto.Questions, NewQuestionDTO(&i.Questions[idx]))
	}
	return dto
}
