package domain

import "fmt"

// ValidationError reports invalid user input caught at the boundary, before
// any backend call is made.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a lookup miss for a named entity.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

// ProvisioningError reports that the slug uniqueness loop ran out of
// attempts without finding a free slug.
type ProvisioningError struct {
	BaseSlug string
	Attempts int
}

func (e *ProvisioningError) Error() string {
	return fmt.Sprintf("could not provision unique slug from %q after %d attempts", e.BaseSlug, e.Attempts)
}
