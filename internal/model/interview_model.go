package model

import (
	"time"

	"gorm.io/datatypes"
)

type InterviewStatus string

const (
	InterviewInProgress InterviewStatus = "in_progress"
	InterviewCompleted  InterviewStatus = "completed"
)

type InterviewDecision string

const (
	DecisionAccepted         InterviewDecision = "accepted"
	DecisionRejected         InterviewDecision = "rejected"
	DecisionNeedsImprovement InterviewDecision = "needs_improvement"
)

type InterviewMode string

const (
	ModeEasy   InterviewMode = "easy"
	ModeMedium InterviewMode = "medium"
	ModeHard   InterviewMode = "hard"
)

type Interview struct {
	ID             uint              `gorm:"primaryKey" json:"id"`
	UserID         uint              `gorm:"index;not null" json:"user_id"`
	CVID           uint              `gorm:"not null" json:"cv_id"`
	JobTitle       string            `gorm:"type:varchar(255);not null" json:"job_title"`
	JobDescription string            `gorm:"type:text" json:"job_description,omitempty"`
	TopicsToFocus  datatypes.JSON    `json:"topics_to_focus,omitempty"`
	Mode           InterviewMode     `gorm:"type:varchar(20);not null" json:"mode"`
	Status         InterviewStatus   `gorm:"type:varchar(20);not null;default:'in_progress'" json:"status"`
	FinalScore     *float64          `json:"final_score,omitempty"`
	Decision       InterviewDecision `gorm:"type:varchar(30)" json:"decision,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	FinishedAt     *time.Time        `json:"finished_at,omitempty"`

	Questions []Question `gorm:"foreignKey:InterviewID" json:"questions,omitempty"`
	Report    *Report    `gorm:"foreignKey:InterviewID" json:"report,omitempty"`
}

func (i *Interview) TableName() string {
	return "interviews"
}
