package dto

import (
	"time"

	"ai-interviewer/internal/model"
)

type UserDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserDTO(u *model.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

type CVDTO struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	FileName  string    `json:"file_name"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCVDTO(cv *model.CV) CVDTO {
	return CVDTO{
		ID:        cv.ID,
		UserID:    cv.UserID,
		FileName:  cv.FileName,
		CreatedAt: cv.CreatedAt,
	}
}
