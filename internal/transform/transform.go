package transform

import (
	"fmt"

	"github.com/propgo/property-forecast/internal/domain"
)

// ScenarioTransform defines a composable what-if operation over scenarios.
// Transforms take a base scenario and return a new modified scenario; the
// base is never mutated.
type ScenarioTransform interface {
	// Apply transforms a base scenario and returns a new modified scenario.
	Apply(base *domain.Scenario) (*domain.Scenario, error)

	// Name returns a short identifier for this transform (e.g. "bump_loan_rates").
	Name() string

	// Description returns a human-readable description of the transform.
	Description() string

	// Validate checks the transform parameters against the base scenario
	// without applying it.
	Validate(base *domain.Scenario) error
}

// ApplyTransforms applies a sequence of transforms in order, each receiving
// the output of the previous one. With no transforms it returns a deep copy
// of the base.
func ApplyTransforms(base *domain.Scenario, transforms []ScenarioTransform) (*domain.Scenario, error) {
	if base == nil {
		return nil, fmt.Errorf("base scenario cannot be nil")
	}

	if len(transforms) == 0 {
		return base.DeepCopy(), nil
	}

	current := base
	for i, t := range transforms {
		if t == nil {
			return nil, fmt.Errorf("transform at index %d is nil", i)
		}
		if err := t.Validate(current); err != nil {
			return nil, fmt.Errorf("transform %s validation failed: %w", t.Name(), err)
		}
		next, err := t.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("transform %s failed: %w", t.Name(), err)
		}
		current = next
	}

	return current, nil
}

// TransformError represents an error that occurred during transformation.
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError creates a new TransformError.
func NewTransformError(transformName, operation, reason string, err error) error {
	return &TransformError{
		TransformName: transformName,
		Operation:     operation,
		Reason:        reason,
		Err:           err,
	}
}
