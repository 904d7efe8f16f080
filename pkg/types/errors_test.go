package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorUnwrap(t *testing.T) {
	err := &ValidationError{
		Validator:  "is-object",
		ResourceID: "abc",
		Err:        ErrWrongKind,
	}

	assert.ErrorIs(t, err, ErrWrongKind)
	assert.Contains(t, err.Error(), "is-object")
	assert.Contains(t, err.Error(), "abc")
}

func TestValidationErrorWithoutID(t *testing.T) {
	err := &ValidationError{Validator: "recognized-type", Err: ErrUntypedResource}
	assert.ErrorIs(t, err, ErrUntypedResource)
	assert.Contains(t, err.Error(), "recognized-type")
}

func TestCycleErrorChain(t *testing.T) {
	cycle := &CycleError{AncestorID: "parent", NodeID: "child"}
	err := &ValidationError{Validator: "not-ancestor", ResourceID: "parent", Err: cycle}

	// CycleError surfaces distinctly but still matches as a validation failure.
	assert.ErrorIs(t, err, ErrCycleDetected)

	var ce *CycleError
	assert.True(t, errors.As(err, &ce))
	assert.Equal(t, "parent", ce.AncestorID)
	assert.Equal(t, "child", ce.NodeID)

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "not-ancestor", ve.Validator)
}
