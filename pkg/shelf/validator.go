package shelf

import (
	"errors"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// Validator checks a candidate before an edge from parent to candidate is
// written. Implementations return a bare cause (ErrWrongKind,
// ErrUntypedResource, ErrAmbiguousKind, or a CycleError); wrapping into a
// ValidationError happens in the composite so the failing validator is
// always named.
type Validator interface {
	// Name identifies the validator in error reports.
	Name() string

	// Validate returns nil if candidate may be added to parent's relation.
	Validate(parent, candidate *types.Resource) error
}

// kindOf derives a resource's effective kind from its type tags.
// A resource tagged as both Collection and Object is an explicit error;
// neither predicate wins.
func kindOf(r *types.Resource) (string, error) {
	isCollection := r.HasType(types.TypeCollection)
	isObject := r.HasType(types.TypeObject)
	switch {
	case isCollection && isObject:
		return "", types.ErrAmbiguousKind
	case isCollection:
		return types.KindCollection, nil
	case isObject:
		return types.KindObject, nil
	case r.HasType(types.TypeFile):
		return types.KindFile, nil
	default:
		return "", types.ErrUntypedResource
	}
}

// anyRecognizedType passes iff the candidate carries a recognizable type
// tag (Collection, Object, or File).
type anyRecognizedType struct{}

func (anyRecognizedType) Name() string { return "recognized-type" }

func (anyRecognizedType) Validate(_, candidate *types.Resource) error {
	_, err := kindOf(candidate)
	return err
}

// isKind passes iff the candidate's effective kind is one of the wanted
// kinds. An ambiguous or untyped candidate fails with that cause rather
// than ErrWrongKind.
type isKind struct {
	name  string
	kinds map[string]bool
}

func (v isKind) Name() string { return v.name }

func (v isKind) Validate(_, candidate *types.Resource) error {
	kind, err := kindOf(candidate)
	if err != nil {
		return err
	}
	if !v.kinds[kind] {
		return types.ErrWrongKind
	}
	return nil
}

func isObject() Validator {
	return isKind{name: "is-object", kinds: map[string]bool{types.KindObject: true}}
}

func isCollection() Validator {
	return isKind{name: "is-collection", kinds: map[string]bool{types.KindCollection: true}}
}

func isFile() Validator {
	return isKind{name: "is-file", kinds: map[string]bool{types.KindFile: true}}
}

func isCollectionOrObject() Validator {
	return isKind{name: "is-collection-or-object", kinds: map[string]bool{
		types.KindCollection: true,
		types.KindObject:     true,
	}}
}

// notAncestor guards containment: it fails with a CycleError when the
// candidate is already a transitive parent of the resource the edge is
// being added to. Each check walks the store; see AncestorChecker.
type notAncestor struct {
	checker *AncestorChecker
}

func (notAncestor) Name() string { return "not-ancestor" }

func (v notAncestor) Validate(parent, candidate *types.Resource) error {
	// Self-containment needs no saved ids to detect: the same resource
	// on both ends is the one-node cycle.
	if parent == candidate {
		return &types.CycleError{AncestorID: candidate.ID, NodeID: parent.ID}
	}
	// Otherwise an unsaved endpoint has no edges in the store and
	// cannot close a cycle with a distinct resource.
	if candidate.ID == "" || parent.ID == "" {
		return nil
	}
	ancestor, err := v.checker.IsAncestor(candidate.ID, parent.ID)
	if err != nil {
		return err
	}
	if ancestor {
		return &types.CycleError{AncestorID: candidate.ID, NodeID: parent.ID}
	}
	return nil
}

// composite runs validators in declared order, fail-fast: the first
// failure short-circuits the chain and is the reported error.
type composite struct {
	validators []Validator
}

func (composite) Name() string { return "composite" }

func (c composite) Validate(parent, candidate *types.Resource) error {
	for _, v := range c.validators {
		err := v.Validate(parent, candidate)
		if err == nil {
			continue
		}
		// Store I/O failures propagate unmodified; only genuine
		// validation causes are wrapped with the validator's name.
		if !isValidationCause(err) {
			return err
		}
		return &types.ValidationError{
			Validator:  v.Name(),
			ResourceID: candidate.ID,
			Err:        err,
		}
	}
	return nil
}

// isValidationCause reports whether err is a rejection rather than a
// store failure.
func isValidationCause(err error) bool {
	return errors.Is(err, types.ErrWrongKind) ||
		errors.Is(err, types.ErrUntypedResource) ||
		errors.Is(err, types.ErrAmbiguousKind) ||
		errors.Is(err, types.ErrCycleDetected)
}

// validatorTable holds the per-kind member validators plus the fixed
// validators for the non-containment relations. Built once per facade
// family at construction; no lazily-initialized package state.
type validatorTable struct {
	members map[string]Validator
	files   Validator
	related Validator
	parents Validator
}

// newValidatorTable builds the static validator table. Containment
// (members) chains end with the ancestor check; the proxied relations and
// files never traverse the graph.
func newValidatorTable(checker *AncestorChecker) *validatorTable {
	return &validatorTable{
		members: map[string]Validator{
			types.KindCollection: composite{validators: []Validator{
				isCollectionOrObject(),
				anyRecognizedType{},
				notAncestor{checker: checker},
			}},
			types.KindObject: composite{validators: []Validator{
				isObject(),
				anyRecognizedType{},
				notAncestor{checker: checker},
			}},
		},
		files:   composite{validators: []Validator{isFile(), anyRecognizedType{}}},
		related: composite{validators: []Validator{isObject(), anyRecognizedType{}}},
		parents: composite{validators: []Validator{isCollection(), anyRecognizedType{}}},
	}
}
