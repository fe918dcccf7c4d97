package models

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusForCode(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{CodeValidation, fiber.StatusBadRequest},
		{CodeInvalidReference, fiber.StatusBadRequest},
		{CodeUnauthenticated, fiber.StatusUnauthorized},
		{CodeUnauthorized, fiber.StatusForbidden},
		{CodeNotFound, fiber.StatusNotFound},
		{CodeConflict, fiber.StatusConflict},
		{CodeInternal, fiber.StatusInternalServerError},
		{"SOMETHING_ELSE", fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.status, StatusForCode(tt.code))
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("unique constraint failed")
	err := NewConflictError("Like already recorded", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "Like already recorded")
	assert.Contains(t, err.Error(), "unique constraint failed")

	var appErr *AppError
	assert.True(t, errors.As(error(err), &appErr))
	assert.Equal(t, CodeConflict, appErr.Code)
}

func TestNewNotFoundError_Message(t *testing.T) {
	err := NewNotFoundError("comment", 7)
	assert.Equal(t, CodeNotFound, err.Code)
	assert.Equal(t, "comment with ID 7 not found", err.Message)
	assert.NoError(t, err.Unwrap())
}

func TestNewInternalError_HidesDetail(t *testing.T) {
	err := NewInternalError(errors.New("pq: connection refused"))
	assert.Equal(t, CodeInternal, err.Code)
	assert.Equal(t, "Internal server error", err.Message)
}
