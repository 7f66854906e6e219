package shapes

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is wrapped by every ConfigurationError.
	ErrConfiguration = errors.New("shapes: invalid configuration")

	// ErrTooFewPoints is returned when a trail or spline does not have enough
	// points to form a segment.
	ErrTooFewPoints = errors.New("shapes: too few points")

	// ErrInvalidMesh is returned when a mesh breaks its index or attribute invariants.
	ErrInvalidMesh = errors.New("shapes: invalid mesh")

	// ErrIndexOverflow is returned when a mesh has too many vertices for a
	// 16-bit (or, when packing for the GPU, 32-bit) index buffer.
	ErrIndexOverflow = errors.New("shapes: vertex count exceeds index range")
)

// ConfigurationError reports a shape parameter outside its accepted range.
type ConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("shapes: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrConfiguration.
func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

func configError(field string, value any, reason string) error {
	return &ConfigurationError{Field: field, Value: value, Reason: reason}
}
