package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	err := NotFound("interview not found")
	assert.True(t, Is(err, CodeNotFound))
	assert.False(t, Is(err, CodeConflict))

	// Works through wrapping.
	wrapped := fmt.Errorf("handler: %w", err)
	assert.True(t, Is(wrapped, CodeNotFound))

	assert.False(t, Is(errors.New("plain"), CodeNotFound))
	assert.False(t, Is(nil, CodeNotFound))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Upstream("evaluation failed", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "upstream_failure")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestHTTPStatus(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		err  error
		want int
	}{
		{NotFound("x"), fiber.StatusNotFound},
		{InvalidState("x"), fiber.StatusBadRequest},
		{Precondition("x"), fiber.StatusBadRequest},
		{Conflict("x"), fiber.StatusConflict},
		{Upstream("x", cause), fiber.StatusBadGateway},
		{Storage("x", cause), fiber.StatusInternalServerError},
		{errors.New("unclassified"), fiber.StatusInternalServerError},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), "err %v", tc.err)
	}
}
