package handler

import (
	"ai-interviewer/internal/apperr"
	"ai-interviewer/internal/dto"
	"ai-interviewer/internal/model"
	"ai-interviewer/internal/usecase"
	"ai-interviewer/internal/util"

	"github.com/gofiber/fiber/v2"
)

type InterviewHandler struct {
	uc *usecase.InterviewUsecase
}

func NewInterviewHandler(uc *usecase.InterviewUsecase) *InterviewHandler {
	return &InterviewHandler{uc: uc}
}

func (h *InterviewHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api/v1/interviews")
	api.Post("/start", h.Start)
	api.Get("/:id", h.Get)
	api.Get("/:id/next-question", h.NextQuestion)
	api.Post("/:id/answer", h.SubmitAnswer)
	api.Post("/:id/finish", h.Finish)
	api.Delete("/:id", h.Delete)
}

type startInterviewRequest struct {
	UserID         uint     `json:"user_id"`
	CVID           uint     `json:"cv_id"`
	JobTitle       string   `json:"job_title"`
	JobDescription string   `json:"job_description"`
	TopicsToFocus  []string `json:"topics_to_focus"`
	Mode           string   `json:"mode"`
}

func (h *InterviewHandler) Start(c *fiber.Ctx) error {
	var req startInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	fields := make(map[string]string)
	if req.UserID == 0 {
		fields["user_id"] = "user_id is required"
	}
	if req.CVID == 0 {
		fields["cv_id"] = "cv_id is required"
	}
	if req.JobTitle == "" {
		fields["job_title"] = "job_title is required"
	}
	if len(fields) > 0 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest,
		}, util.NewFormError("validation failed", fields))
	}

	interview, err := h.uc.StartInterview(c.Context(), usecase.StartInterviewInput{
		UserID:         req.UserID,
		CVID:           req.CVID,
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
		TopicsToFocus:  req.TopicsToFocus,
		Mode:           model.InterviewMode(req.Mode),
	})
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    apperr.HTTPStatus(err),
			Message: "failed to start interview",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Interview started",
		Data:    dto.NewInterviewDTO(interview),
	})
}

func (h *InterviewHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid interview id",
		}, err)
	}
	interview, err := h.uc.GetInterview(uint(id))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    apperr.HTTPStatus(err),
			Message: "failed to get interview",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get interview",
		Data:    dto.NewInterviewDTO(interview),
	})
}

func (h *InterviewHandler) NextQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid interview id",
		}, err)
	}
	question, allAnswered, err := h.uc.NextQuestion(uint(id))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    apperr.HTTPStatus(err),
			Message: "failed to get next question",
		}, err)
	}
	if allAnswered {
		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Code:    fiber.StatusOK,
			Message: "All questions have been answered. Please finish the interview.",
		})
	}
	q := dto.NewQuestionDTO(question)
	q.Answer = nil
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get next question",
		Data:    q,
	})
}

type submitAnswerRequest struct {
	QuestionID uint   `json:"question_id"`
	UserAnswer string `json:"user_answer"`
}

func (h *InterviewHandler) SubmitAnswer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid interview id",
		}, err)
	}
	var req submitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	fields := make(map[string]string)
	if req.QuestionID == 0 {
		fields["question_id"] = "question_id is required"
	}
	if req.UserAnswer == "" {
		fields["user_answer"] = "user_answer is required"
	}
	if len(fields) > 0 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest,
		}, util.NewFormError("validation failed", fields))
	}

	answer, err := h.uc.SubmitAnswer(c.Context(), uint(id), req.QuestionID, req.UserAnswer)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    apperr.HTTPStatus(err),
			Message: "failed to submit answer",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Answer submitted",
		Data:    dto.NewAnswerDTO(answer),
	})
}

func (h *InterviewHandler) Finish(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid interview id",
		}, err)
	}
	interview, err := h.uc.FinishInterview(c.Context(), uint(id))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    apperr.HTTPStatus(err),
			Message: "failed to finish interview",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Interview finished",
		Data:    dto.NewInterviewDTO(interview),
	})
}

func (h *InterviewHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid interview id",
		}, err)
	}
	if err := h.uc.DeleteInterview(uint(id)); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    apperr.HTTPStatus(err),
			Message: "failed to delete interview",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Interview deleted",
	})
}
