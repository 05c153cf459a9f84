package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

type CV struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	FileName  string    `gorm:"type:varchar(255)" json:"file_name"`
	FilePath  string    `gorm:"type:varchar(512)" json:"file_path"`
	RawText   string    `gorm:"type:text" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *CV) TableName() string {
	return "cvs"
}

// CVEmbedding holds the pgvector embedding of a CV's raw text. It lives in its
// own table so the rest of the schema stays portable to sqlite in tests; it is
// only migrated against postgres.
type CVEmbedding struct {
	CVID      uint            `gorm:"primaryKey" json:"cv_id"`
	Embedding pgvector.Vector `gorm:"type:vector(3072)" json:"-"`
	CreatedAt time.Time       `json:"created_at"`
}

func (c *CVEmbedding) TableName() string {
	return "cv_embeddings"
}
