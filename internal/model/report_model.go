package model

import (
	"time"

	"gorm.io/datatypes"
)

// Report is created exactly once per completed interview; its presence is the
// idempotency marker that finish has already run.
type Report struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	InterviewID     uint           `gorm:"uniqueIndex;not null" json:"interview_id"`
	Content         string         `gorm:"type:text" json:"content"`
	Strengths       datatypes.JSON `json:"strengths,omitempty"`
	Improvements    datatypes.JSON `json:"areas_for_improvement,omitempty"`
	FilePath        string         `gorm:"type:varchar(512)" json:"-"`
	SentToCandidate bool           `gorm:"not null;default:false" json:"sent_to_candidate"`
	CreatedAt       time.Time      `json:"created_at"`
}

func (r *Report) TableName() string {
	return "reports"
}
