package handler

import (
	"ai-interviewer/internal/apperr"
	"ai-interviewer/internal/dto"
	"ai-interviewer/internal/response"
	"ai-interviewer/internal/usecase"
	"ai-interviewer/internal/util"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	uc *usecase.UserUsecase
}

func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api/v1/users")
	api.Post("/", h.Create)
	api.Get("/", h.List)
	api.Get("/:id", h.Get)
}

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	fields := make(map[string]string)
	if req.Name == "" {
		fields["name"] = "name is required"
	}
	if req.Email == "" {
		fields["email"] = "email is required"
	}
	if len(fields) > 0 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest,
		}, util.NewFormError("validation failed", fields))
	}

	user, err := h.uc.CreateUser(req.Name, req.Email)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    apperr.HTTPStatus(err),
			Message: "failed to create user",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "User created",
		Data:    dto.NewUserDTO(user),
	})
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid user id",
		}, err)
	}
	user, err := h.uc.GetUser(uint(id))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    apperr.HTTPStatus(err),
			Message: "failed to get user",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get user",
		Data:    dto.NewUserDTO(user),
	})
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)

	users, total, err := h.uc.ListUsers(page, pageSize)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    apperr.HTTPStatus(err),
			Message: "failed to list users",
		}, err)
	}

	data := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		data = append(data, dto.NewUserDTO(&users[i]))
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success list users",
		Data:       data,
		Pagination: response.NewPagination(page, pageSize, len(data), total),
	})
}
