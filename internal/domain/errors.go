package domain

import "fmt"

// ProtectedCategoryError is returned when a caller tries to delete the
// built-in default category.
type ProtectedCategoryError struct {
	ID string
}

func (e ProtectedCategoryError) Error() string {
	return fmt.Sprintf("cannot delete protected category %q", e.ID)
}

func IsProtectedCategoryError(err error) bool {
	_, ok := err.(ProtectedCategoryError)
	return ok
}

// ValidationError reports a rejected field on a template or category input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func IsValidationError(err error) bool {
	_, ok := err.(ValidationError)
	return ok
}
