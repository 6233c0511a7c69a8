package service

import (
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// ErrUnavailable marks failures the Gemini API reported about itself,
// as opposed to failures inside this service. The boundary layer maps
// it to 503; everything else becomes a generic 500.
var ErrUnavailable = errors.New("ai service unavailable")

// classify wraps recognized API-level errors with ErrUnavailable so
// callers can branch with errors.Is instead of inspecting SDK types.
func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %s", ErrUnavailable, apiErr.Error())
	}
	return err
}
