package repository

import (
	"ai-interviewer/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type CVRepository struct {
	db *gorm.DB
}

func NewCVRepository(db *gorm.DB) *CVRepository {
	return &CVRepository{db}
}

func (r *CVRepository) Create(cv *model.CV) error {
	return r.db.Create(cv).Error
}

func (r *CVRepository) FindByID(id uint) (*model.CV, error) {
	var cv model.CV
	err := r.db.First(&cv, id).Error
	return &cv, err
}

func (r *CVRepository) FindByIDAndUser(id, userID uint) (*model.CV, error) {
	var cv model.CV
	err := r.db.First(&cv, "id = ? AND user_id = ?", id, userID).Error
	return &cv, err
}

func (r *CVRepository) ListByUser(userID uint) ([]model.CV, error) {
	var cvs []model.CV
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&cvs).Error
	return cvs, err
}

func (r *CVRepository) Delete(cv *model.CV) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.CVEmbedding{}, "cv_id = ?", cv.ID).Error; err != nil {
			return err
		}
		return tx.Delete(cv).Error
	})
}

func (r *CVRepository) SaveEmbedding(emb *model.CVEmbedding) error {
	return r.db.Save(emb).Error
}

// SearchSimilar ranks other users' CVs by vector distance to the given CV's
// embedding. Postgres-only: relies on the pgvector <-> operator.
func (r *CVRepository) SearchSimilar(embedding pgvector.Vector, excludeCVID uint, topK int) ([]model.CV, error) {
	var cvs []model.CV
	err := r.db.Raw(`
        SELECT cvs.*
        FROM cvs
        JOIN cv_embeddings ON cv_embeddings.cv_id = cvs.id
        WHERE cvs.id <> ?
        ORDER BY cv_embeddings.embedding <-> ?
        LIMIT ?
    `, excludeCVID, embedding, topK).Scan(&cvs).Error
	return cvs, err
}

func (r *CVRepository) FindEmbedding(cvID uint) (*model.CVEmbedding, error) {
	var emb model.CVEmbedding
	err := r.db.First(&emb, "cv_id = ?", cvID).Error
	return &emb, err
}
