package types

import (
	"errors"
	"fmt"
)

// Store operation errors.
var (
	ErrNotFound    = errors.New("resource not found")
	ErrInvalidID   = errors.New("invalid resource ID")
	ErrInvalidData = errors.New("invalid entity data")
)

// Validation errors. These are the causes carried by ValidationError.
var (
	ErrUnknownKind     = errors.New("unknown resource kind")
	ErrUntypedResource = errors.New("resource carries no recognized type tag")
	ErrWrongKind       = errors.New("resource kind not valid for this relation")
	ErrAmbiguousKind   = errors.New("resource is tagged as both collection and object")
	ErrCycleDetected   = errors.New("candidate is already an ancestor")
)

// ValidationError reports that a relation add was rejected. The edge is
// never partially applied. Validator names which check failed; Unwrap
// exposes the underlying sentinel for errors.Is matching.
type ValidationError struct {
	// Validator is the name of the validator that failed.
	Validator string

	// ResourceID is the candidate's ID, or "" if the candidate is unsaved.
	ResourceID string

	// Err is the underlying cause (ErrWrongKind, ErrUntypedResource,
	// ErrAmbiguousKind, or a CycleError).
	Err error
}

func (e *ValidationError) Error() string {
	if e.ResourceID == "" {
		return fmt.Sprintf("validation failed (%s): %v", e.Validator, e.Err)
	}
	return fmt.Sprintf("validation failed (%s) for %s: %v", e.Validator, e.ResourceID, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// CycleError reports that adding a member would create a containment cycle:
// the candidate is already a transitive parent of the prospective parent.
// Unwrap exposes ErrCycleDetected for errors.Is matching.
type CycleError struct {
	// AncestorID is the candidate that was found among the ancestors.
	AncestorID string

	// NodeID is the prospective parent the check started from.
	NodeID string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle detected: %s is already an ancestor of %s", e.AncestorID, e.NodeID)
}

func (e *CycleError) Unwrap() error {
	return ErrCycleDetected
}
