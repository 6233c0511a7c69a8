package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestClassify_APIError(t *testing.T) {
	apiErr := genai.APIError{
		Code:    503,
		Message: "The model is overloaded. Please try again later.",
		Status:  "UNAVAILABLE",
	}

	err := classify(fmt.Errorf("gemini api call failed: %w", apiErr))

	require.True(t, errors.Is(err, ErrUnavailable))
	assert.Contains(t, err.Error(), "The model is overloaded")
}

func TestClassify_UnrecognizedError(t *testing.T) {
	plain := errors.New("dial tcp: i/o timeout")

	err := classify(plain)

	assert.False(t, errors.Is(err, ErrUnavailable))
	assert.Equal(t, plain, err)
}
