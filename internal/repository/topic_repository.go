package repository

import (
	"ai-interviewer/internal/model"

	"gorm.io/gorm"
)

type TopicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) *TopicRepository {
	return &TopicRepository{db}
}

// FindByNames looks up the catalog for a batch of canonical names in one
// query. Matching is case-insensitive as a guard against rows that predate
// canonicalization.
func (r *TopicRepository) FindByNames(names []string) ([]model.Topic, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var topics []model.Topic
	err := r.db.Where("LOWER(name) IN ?", names).Find(&topics).Error
	return topics, err
}

func (r *TopicRepository) Create(topic *model.Topic) error {
	return r.db.Create(topic).Error
}

func (r *TopicRepository) FindByName(name string) (*model.Topic, error) {
	var topic model.Topic
	err := r.db.First(&topic, "LOWER(name) = ?", name).Error
	return &topic, err
}
