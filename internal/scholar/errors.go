package scholar

import (
	"errors"
	"fmt"
)

// ErrNoWindow is returned when a verse operation runs before any juz has
// been loaded into the session.
var ErrNoWindow = errors.New("no ayah window loaded")

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
