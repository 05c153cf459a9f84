package usecase

import (
	"fmt"
	"testing"

	"ai-interviewer/internal/apperr"
	"ai-interviewer/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	uc := NewUserUsecase(repository.NewUserRepository(db))

	_, err := uc.CreateUser("Ana", "ana@example.com")
	require.NoError(t, err)

	_, err = uc.CreateUser("Other Ana", "ana@example.com")
	assert.True(t, apperr.Is(err, apperr.CodeConflict))
}

func TestGetUserNotFound(t *testing.T) {
	db := newTestDB(t)
	uc := NewUserUsecase(repository.NewUserRepository(db))

	_, err := uc.GetUser(42)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestListUsersPagination(t *testing.T) {
	db := newTestDB(t)
	uc := NewUserUsecase(repository.NewUserRepository(db))

	for i := 0; i < 25; i++ {
		_, err := uc.CreateUser(fmt.Sprintf("User %d", i), fmt.Sprintf("user%d@example.com", i))
		require.NoError(t, err)
	}

	users, total, err := uc.ListUsers(1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, users, 10)

	users, _, err = uc.ListUsers(3, 10)
	require.NoError(t, err)
	assert.Len(t, users, 5)

	// Out-of-range arguments fall back to defaults instead of failing.
	users, total, err = uc.ListUsers(-1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, users, 20)
}
