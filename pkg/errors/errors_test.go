package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hmaas-backend/pkg/schema"
)

func TestCodeForStatus(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusBadRequest, CodeBadRequest},
		{http.StatusUnauthorized, CodeUnauthorized},
		{http.StatusForbidden, CodeForbidden},
		{http.StatusNotFound, CodeNotFound},
		{http.StatusConflict, CodeConflict},
		{http.StatusUnprocessableEntity, CodeUnprocessable},
		{http.StatusTooManyRequests, CodeTooManyRequests},
		{http.StatusInternalServerError, CodeInternal},
		{http.StatusBadGateway, CodeBadGateway},
		{http.StatusServiceUnavailable, CodeServiceUnavailable},
		{http.StatusTeapot, CodeInternal},
		{0, CodeInternal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CodeForStatus(tt.status), "status %d", tt.status)
	}
}

func TestNew_DerivesCodeFromStatus(t *testing.T) {
	err := New("nope", http.StatusConflict)
	assert.Equal(t, http.StatusConflict, err.Status)
	assert.Equal(t, CodeConflict, err.Code)
	assert.Equal(t, "nope", err.Message)
}

func TestNewValidationError(t *testing.T) {
	issues := []schema.Issue{{Path: "name", Message: "name is required"}}
	err := NewValidationError("Validation failed", issues)

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, CodeValidation, err.Code)
	assert.Equal(t, issues, err.Details)
	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Item")

	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, CodeNotFound, err.Code)
	assert.Equal(t, "Item not found", err.Message)
	assert.True(t, IsNotFound(err))
}

func TestAppError_CauseChain(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := NewBadRequestError("Invalid cursor").WithCause(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "BAD_REQUEST")
	assert.Contains(t, err.Error(), "boom")
}

func TestGetAppError_WrappedChain(t *testing.T) {
	inner := NewInternalError("storage down")
	wrapped := fmt.Errorf("listing items: %w", inner)

	got := GetAppError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, inner, got)

	assert.Nil(t, GetAppError(fmt.Errorf("plain")))
}

func TestDataIntegrityError(t *testing.T) {
	issues := []schema.Issue{{Path: "name", Message: "required string field is missing or not a string"}}
	payload := map[string]any{"itemId": "item-1"}
	err := NewDataIntegrityError("item", issues, payload)

	assert.Equal(t, "data integrity error reading item: 1 field issue(s)", err.Error())
	assert.True(t, IsDataIntegrity(err))

	wrapped := fmt.Errorf("reading item: %w", err)
	got := GetDataIntegrityError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, payload, got.Payload)

	assert.Nil(t, GetAppError(err), "data integrity errors are not app errors")
}
