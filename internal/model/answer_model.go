package model

import "time"

// Answer is one-to-one with Question; the unique index on QuestionID is what
// makes a concurrent double submission lose with a duplicate-key error.
type Answer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	QuestionID uint      `gorm:"uniqueIndex;not null" json:"question_id"`
	UserAnswer string    `gorm:"type:text;not null" json:"user_answer"`
	Score      *float64  `json:"score,omitempty"`
	Feedback   *string   `gorm:"type:text" json:"feedback,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (a *Answer) TableName() string {
	return "answers"
}
