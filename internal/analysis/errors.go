package analysis

import "fmt"

// ValidationError indicates the caller supplied malformed or out-of-range
// input. It is recoverable by correcting the input and is never retried
// internally.
type ValidationError struct {
	// Field names the offending input field or, for unit mix parsing, the
	// offending token.
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationErrorf(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
