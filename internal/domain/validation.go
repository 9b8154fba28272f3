package domain

import "fmt"

// ValidationKind distinguishes why a checkout input was rejected.
type ValidationKind string

const (
	MissingField    ValidationKind = "missing_field"
	BadDateFormat   ValidationKind = "bad_date_format"
	DateOutOfWindow ValidationKind = "date_out_of_window"
	BadPhone        ValidationKind = "bad_phone"
)

// ValidationError is returned from checkout validation instead of a plain
// error so callers can render the specific cause.
type ValidationError struct {
	Kind  ValidationKind
	Field string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed: %s (%s)", e.Kind, e.Field)
	}
	return fmt.Sprintf("validation failed: %s", e.Kind)
}
