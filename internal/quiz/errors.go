package quiz

import (
	"errors"
	"strings"
)

var (
	ErrQuizNotFound     = errors.New("quiz not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrQuizExists       = errors.New("quiz already exists")
)

// ValidationError reports every rule a malformed entity input violated.
// Callers branch on the type with errors.As, never on message text.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 1 {
		return e.Details[0]
	}
	return "validation failed: " + strings.Join(e.Details, "; ")
}

func newValidationError(details ...string) *ValidationError {
	return &ValidationError{Details: details}
}
