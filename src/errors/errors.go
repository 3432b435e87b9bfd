package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure scenarios
var (
	// Configuration errors — the only class allowed to halt the process
	ErrAPIKeyMissing = errors.New("openai api key not configured")
	ErrEmptyCatalog  = errors.New("no personas loaded")

	// Persona errors
	ErrPersonaNotFound = errors.New("persona not found")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
)

// LoadError represents a persona definition file that failed to load.
// Callers skip the offending file rather than aborting the catalog.
type LoadError struct {
	Path  string // file that failed
	Field string // missing required field, if any
	Err   error  // underlying error
}

func (e *LoadError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("persona file %s: missing required field %q", e.Path, e.Field)
	}
	return fmt.Sprintf("persona file %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// APIError represents a classified failure from the chat-completion API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("chat completion failed (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("chat completion failed (status %d)", e.StatusCode)
}

// AsAPIError unwraps err into an APIError if it is one
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsFatalConfig reports whether err belongs to the configuration class
// that may abort startup.
func IsFatalConfig(err error) bool {
	return errors.Is(err, ErrAPIKeyMissing) || errors.Is(err, ErrEmptyCatalog)
}

// WrapWithContext adds context to an error
func WrapWithContext(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
