package model

type QuestionType string

const (
	QuestionTechnical   QuestionType = "technical"
	QuestionBehavioral  QuestionType = "behavioral"
	QuestionSituational QuestionType = "situational"
)

type Question struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	InterviewID uint         `gorm:"index;not null;uniqueIndex:idx_interview_order" json:"interview_id"`
	Content     string       `gorm:"type:text;not null" json:"content"`
	Type        QuestionType `gorm:"type:varchar(20);not null;default:'technical'" json:"type"`
	MaxScore    float64      `gorm:"not null;default:10" json:"max_score"`
	Order       int          `gorm:"column:order;not null;uniqueIndex:idx_interview_order" json:"order"`

	Answer *Answer `gorm:"foreignKey:QuestionID" json:"answer,omitempty"`
	Topics []Topic `gorm:"many2many:question_topics" json:"topics,omitempty"`
}

func (q *Question) TableName() string {
	return "questions"
}
