package repository

import (
	"ai-interviewer/internal/model"

	"gorm.io/gorm"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db}
}

func (r *ReportRepository) Create(tx *gorm.DB, report *model.Report) error {
	return tx.Create(report).Error
}

func (r *ReportRepository) FindByInterview(interviewID uint) (*model.Report, error) {
	var report model.Report
	err := r.db.First(&report, "interview_id = ?", interviewID).Error
	return &report, err
}

func (r *ReportRepository) MarkSent(reportID uint) error {
	return r.db.Model(&model.Report{}).
		Where("id = ?", reportID).
		Update("sent_to_candidate", true).Error
}
