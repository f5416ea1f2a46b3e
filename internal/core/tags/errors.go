package tags

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateTag is returned when a tag is already attached to the post.
	// The whole batch is rolled back.
	ErrDuplicateTag = errors.New("tag already associated with post")

	// ErrPostNotFound is returned when tagging a post that doesn't exist
	ErrPostNotFound = errors.New("post not found")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// IsConflict checks if error is a duplicate tag association
func IsConflict(err error) bool {
	return errors.Is(err, ErrDuplicateTag)
}

// IsNotFound checks if error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound)
}
