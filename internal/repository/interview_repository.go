package repository

import (
	"ai-interviewer/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InterviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{db}
}

// DB exposes the handle for callers that open their own transactions around
// multiple repositories.
func (r *InterviewRepository) DB() *gorm.DB {
	return r.db
}

// Create persists the interview together with its questions and their topic
// associations in one atomic unit.
func (r *InterviewRepository) Create(tx *gorm.DB, interview *model.Interview) error {
	return tx.Create(interview).Error
}

func (r *InterviewRepository) FindByID(id uint) (*model.Interview, error) {
	var interview model.Interview
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}})
		}).
		Preload("Questions.Answer").
		Preload("Questions.Topics").
		Preload("Report").
		First(&interview, id).Error
	return &interview, err
}

// NextUnanswered returns the lowest-order question without an answer, or
// gorm.ErrRecordNotFound when every question has one.
func (r *InterviewRepository) NextUnanswered(interviewID uint) (*model.Question, error) {
	var question model.Question
	err := r.db.
		Preload("Topics").
		Joins("LEFT JOIN answers ON answers.question_id = questions.id").
		Where("questions.interview_id = ? AND answers.id IS NULL", interviewID).
		Order(clause.OrderByColumn{Column: clause.Column{Table: "questions", Name: "order"}}).
		First(&question).Error
	return &question, err
}

func (r *InterviewRepository) QuestionByID(interviewID, questionID uint) (*model.Question, error) {
	var question model.Question
	err := r.db.
		Preload("Answer").
		Preload("Topics").
		First(&question, "id = ? AND interview_id = ?", questionID, interviewID).Error
	return &question, err
}

func (r *InterviewRepository) CreateAnswer(answer *model.Answer) error {
	return r.db.Create(answer).Error
}

func (r *InterviewRepository) UpdateAnswer(tx *gorm.DB, answer *model.Answer) error {
	return tx.Save(answer).Error
}

// AnswersForInterview returns all answers belonging to the interview's
// questions, keyed off the questions table.
func (r *InterviewRepository) AnswersForInterview(interviewID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.
		Joins("JOIN questions ON questions.id = answers.question_id").
		Where("questions.interview_id = ?", interviewID).
		Find(&answers).Error
	return answers, err
}

func (r *InterviewRepository) CountQuestions(interviewID uint) (int64, error) {
	var n int64
	err := r.db.Model(&model.Question{}).Where("interview_id = ?", interviewID).Count(&n).Error
	return n, err
}

func (r *InterviewRepository) CountAnswers(interviewID uint) (int64, error) {
	var n int64
	err := r.db.Model(&model.Answer{}).
		Joins("JOIN questions ON questions.id = answers.question_id").
		Where("questions.interview_id = ?", interviewID).
		Count(&n).Error
	return n, err
}

func (r *InterviewRepository) MarkCompleted(tx *gorm.DB, interview *model.Interview) error {
	return tx.Model(interview).
		Select("status", "final_score", "decision", "finished_at").
		Updates(map[string]any{
			"status":      interview.Status,
			"final_score": interview.FinalScore,
			"decision":    interview.Decision,
			"finished_at": interview.FinishedAt,
		}).Error
}

// Delete removes the interview and everything it owns. Ownership is cascaded
// explicitly: answers, topic associations, questions, report, then the row.
func (r *InterviewRepository) Delete(interview *model.Interview) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var questionIDs []uint
		if err := tx.Model(&model.Question{}).
			Where("interview_id = ?", interview.ID).
			Pluck("id", &questionIDs).Error; err != nil {
			return err
		}
		if len(questionIDs) > 0 {
			if err := tx.Delete(&model.Answer{}, "question_id IN ?", questionIDs).Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM question_topics WHERE question_id IN ?", questionIDs).Error; err != nil {
				return err
			}
			if err := tx.Delete(&model.Question{}, "id IN ?", questionIDs).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&model.Report{}, "interview_id = ?", interview.ID).Error; err != nil {
			return err
		}
		return tx.Delete(interview).Error
	})
}
