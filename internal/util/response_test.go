package util

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponseFormError(t *testing.T) {
	app := fiber.New()
	app.Post("/users", func(c *fiber.Ctx) error {
		return ErrorResponse(c, ErrorResponseFormat{
			Code: fiber.StatusBadRequest,
		}, NewFormError("validation failed", map[string]string{
			"email": "email is required",
		}))
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/users", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload struct {
		Success bool              `json:"success"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.False(t, payload.Success)
	assert.Equal(t, "validation failed", payload.Message)
	assert.Equal(t, "email is required", payload.Details["email"])
}

func TestSuccessResponseDefaultsStatusOK(t *testing.T) {
	app := fiber.New()
	app.Get("/ping", func(c *fiber.Ctx) error {
		return SuccessResponse(c, SuccessResponseFormat{Message: "pong"})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
