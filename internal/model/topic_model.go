package model

// Topic is a canonical skill label shared across all interviews. Name carries
// the uniqueness constraint the topic resolver relies on under concurrency.
type Topic struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
}

func (t *Topic) TableName() string {
	return "topics"
}
