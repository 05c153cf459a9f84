package handler

import (
	"path/filepath"
	"strings"

	"ai-interviewer/internal/apperr"
	"ai-interviewer/internal/config"
	"ai-interviewer/internal/dto"
	"ai-interviewer/internal/usecase"
	"ai-interviewer/internal/util"

	"github.com/gofiber/fiber/v2"
)

type CVHandler struct {
	uc *usecase.CVUsecase
}

func NewCVHandler(uc *usecase.CVUsecase) *CVHandler {
	return &CVHandler{uc: uc}
}

func (h *CVHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/v1/users/:id/cvs", h.Upload)
	app.Get("/api/v1/users/:id/cvs", h.List)
	app.Get("/api/v1/cvs/:id/similar", h.Similar)
	app.Delete("/api/v1/cvs/:id", h.Delete)
}

func (h *CVHandler) Upload(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid user id",
		}, err)
	}

	file, err := c.FormFile("cv")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "cv file is required",
		}, err)
	}

	storageConfig := config.LoadStorageConfig()
	if file.Size > storageConfig.MaxFileMB*1024*1024 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusRequestEntityTooLarge,
			Message: "cv file size is too large",
		})
	}
	if strings.ToLower(filepath.Ext(file.Filename)) != ".pdf" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnsupportedMediaType,
			Message: "only PDF CVs are supported",
		})
	}

	savePath, err := util.UniqueFilePath(util.UserCVDir(storageConfig.BaseDir, uint(userID)), file.Filename)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot prepare upload directory",
		}, err)
	}
	if err := c.SaveFile(file, savePath); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot save cv file",
		}, err)
	}

	cv, err := h.uc.RegisterCV(c.Context(), uint(userID), file.Filename, savePath)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    apperr.HTTPStatus(err),
			Message: "failed to process cv",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "CV uploaded",
		Data:    dto.NewCVDTO(cv),
	})
}

func (h *CVHandler) List(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid user id",
		}, err)
	}
	cvs, err := h.uc.ListByUser(uint(userID))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    apperr.HTTPStatus(err),
			Message: "failed to list cvs",
		}, err)
	}
	data := make([]dto.CVDTO, 0, len(cvs))
	for i := range cvs {
		data = append(data, dto.NewCVDTO(&cvs[i]))
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success list cvs",
		Data:    data,
	})
}

func (h *CVHandler) Similar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid cv id",
		}, err)
	}
	cvs, err := h.uc.SimilarCVs(uint(id), c.QueryInt("top_k", 5))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    apperr.HTTPStatus(err),
			Message: "failed to search similar cvs",
		}, err)
	}
	data := make([]dto.CVDTO, 0, len(cvs))
	for i := range cvs {
		data = append(data, dto.NewCVDTO(&cvs[i]))
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success search similar cvs",
		Data:    data,
	})
}

func (h *CVHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid cv id",
		}, err)
	}
	if err := h.uc.DeleteCV(uint(id)); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    apperr.HTTPStatus(err),
			Message: "failed to delete cv",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "CV deleted",
	})
}
