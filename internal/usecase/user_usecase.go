package usecase

import (
	"errors"

	"ai-interviewer/internal/apperr"
	"ai-interviewer/internal/model"
	"ai-interviewer/internal/repository"

	"gorm.io/gorm"
)

type UserUsecase struct {
	userRepo *repository.UserRepository
}

func NewUserUsecase(userRepo *repository.UserRepository) *UserUsecase {
	return &UserUsecase{userRepo: userRepo}
}

func (uc *UserUsecase) CreateUser(name, email string) (*model.User, error) {
	user := &model.User{Name: name, Email: email}
	if err := uc.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("a user with this email already exists")
		}
		return nil, apperr.Storage("failed to create user", err)
	}
	return user, nil
}

func (uc *UserUsecase) GetUser(id uint) (*model.User, error) {
	user, err := uc.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Storage("failed to load user", err)
	}
	return user, nil
}

func (uc *UserUsecase) ListUsers(page, pageSize int) ([]model.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	users, total, err := uc.userRepo.List(page, pageSize)
	if err != nil {
		return nil, 0, apperr.Storage("failed to list users", err)
	}
	return users, total, nil
}
