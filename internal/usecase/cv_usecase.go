package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"ai-interviewer/internal/apperr"
	"ai-interviewer/internal/config"
	"ai-interviewer/internal/logger"
	"ai-interviewer/internal/model"
	"ai-interviewer/internal/repository"
	"ai-interviewer/internal/service"
	"ai-interviewer/internal/util"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type CVUsecase struct {
	cvRepo   *repository.CVRepository
	userRepo *repository.UserRepository
	// embedder is optional; when nil (or unsupported by the active provider)
	// the embedding side effect is skipped.
	embedder service.EmbeddingServiceInterface
}

func NewCVUsecase(cvRepo *repository.CVRepository, userRepo *repository.UserRepository, embedder service.EmbeddingServiceInterface) *CVUsecase {
	return &CVUsecase{cvRepo: cvRepo, userRepo: userRepo, embedder: embedder}
}

// RegisterCV takes a PDF already saved at savedPath, extracts its text, and
// persists the CV row. On any failure after the save, the file is deleted so
// no orphaned artifact remains.
func (uc *CVUsecase) RegisterCV(ctx context.Context, userID uint, origName, savedPath string) (*model.CV, error) {
	cleanup := func() {
		if err := util.RemoveFileIfExists(savedPath); err != nil {
			logger.L().Warnf("failed to remove orphaned upload %s: %v", savedPath, err)
		}
	}

	if _, err := uc.userRepo.FindByID(userID); err != nil {
		cleanup()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Storage("failed to load user", err)
	}

	text, err := util.ExtractPDFText(savedPath, config.LoadStorageConfig().MaxPDFPages)
	if err != nil {
		cleanup()
		return nil, apperr.Wrap(apperr.CodePrecondition, "invalid or unreadable PDF", err)
	}

	cv := &model.CV{
		UserID:   userID,
		FileName: filepath.Base(savedPath),
		FilePath: savedPath,
		RawText:  text,
	}
	if err := uc.cvRepo.Create(cv); err != nil {
		cleanup()
		return nil, apperr.Storage("failed to save CV", err)
	}

	if uc.embedder != nil {
		go uc.storeEmbedding(cv.ID, text)
	}
	return cv, nil
}

// storeEmbedding is a best-effort background step; a failure only costs the
// similar-CV search for this row.
func (uc *CVUsecase) storeEmbedding(cvID uint, text string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	values, err := uc.embedder.GenerateEmbedding(ctx, text)
	if err != nil {
		logger.L().Warnf("failed to embed CV %d: %v", cvID, err)
		return
	}
	emb := &model.CVEmbedding{
		CVID:      cvID,
		Embedding: pgvector.NewVector(values),
	}
	if err := uc.cvRepo.SaveEmbedding(emb); err != nil {
		logger.L().Warnf("failed to store embedding for CV %d: %v", cvID, err)
	}
}

func (uc *CVUsecase) ListByUser(userID uint) ([]model.CV, error) {
	if _, err := uc.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Storage("failed to load user", err)
	}
	cvs, err := uc.cvRepo.ListByUser(userID)
	if err != nil {
		return nil, apperr.Storage("failed to list CVs", err)
	}
	return cvs, nil
}

func (uc *CVUsecase) DeleteCV(id uint) error {
	cv, err := uc.cvRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("CV not found")
		}
		return apperr.Storage("failed to load CV", err)
	}
	if err := uc.cvRepo.Delete(cv); err != nil {
		return apperr.Storage("failed to delete CV", err)
	}
	if err := util.RemoveFileIfExists(cv.FilePath); err != nil {
		logger.L().Warnf("failed to remove CV file %s: %v", cv.FilePath, err)
	}
	return nil
}

// SimilarCVs ranks other stored CVs by embedding distance.
func (uc *CVUsecase) SimilarCVs(id uint, topK int) ([]model.CV, error) {
	if topK < 1 || topK > 20 {
		topK = 5
	}
	emb, err := uc.cvRepo.FindEmbedding(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("no embedding stored for this CV")
		}
		return nil, apperr.Storage("failed to load embedding", err)
	}
	cvs, err := uc.cvRepo.SearchSimilar(emb.Embedding, id, topK)
	if err != nil {
		return nil, apperr.Storage("similarity search failed", err)
	}
	return cvs, nil
}
