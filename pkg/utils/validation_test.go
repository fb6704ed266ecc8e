package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createRequest struct {
	Name        string  `json:"name" validate:"required,min=1"`
	Description *string `json:"description,omitempty"`
}

func TestValidateStruct_Valid(t *testing.T) {
	desc := "A magnetic compass"
	issues := ValidateStruct(createRequest{Name: "Compass", Description: &desc})
	assert.Nil(t, issues)
}

func TestValidateStruct_MissingRequiredField(t *testing.T) {
	issues := ValidateStruct(createRequest{})

	require.Len(t, issues, 1)
	assert.Equal(t, "name", issues[0].Path)
	assert.Equal(t, "name is required", issues[0].Message)
}

func TestValidateStruct_MinLength(t *testing.T) {
	type req struct {
		Name string `validate:"min=3"`
	}
	issues := ValidateStruct(req{Name: "ab"})

	require.Len(t, issues, 1)
	assert.Equal(t, "name must be at least 3 characters", issues[0].Message)
}

func TestValidateStruct_OptionalFieldOmitted(t *testing.T) {
	issues := ValidateStruct(createRequest{Name: "Compass"})
	assert.Nil(t, issues)
}
