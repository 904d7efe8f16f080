package types

import "time"

// Resource kinds. A resource's kind is fixed at creation and never changes.
const (
	KindCollection = "collection"
	KindObject     = "object"
	KindFile       = "file"
)

// validKinds is the set of recognized resource kinds.
var validKinds = map[string]bool{
	KindCollection: true,
	KindObject:     true,
	KindFile:       true,
}

// ValidKind reports whether the given kind is recognized.
func ValidKind(kind string) bool {
	return validKinds[kind]
}

// PCDM type tags. KindTag maps a kind to its vocabulary tag.
const (
	TypeCollection = "pcdm:Collection"
	TypeObject     = "pcdm:Object"
	TypeFile       = "pcdm:File"
)

// KindTag returns the vocabulary tag for a kind, or "" for an unknown kind.
func KindTag(kind string) string {
	switch kind {
	case KindCollection:
		return TypeCollection
	case KindObject:
		return TypeObject
	case KindFile:
		return TypeFile
	default:
		return ""
	}
}

// Resource is the base unit for Collections, Objects, and Files.
// ID is empty until the resource is first saved to a Store.
type Resource struct {
	// ID is a UUID v7, assigned by the Store on first save.
	ID string `json:"id,omitempty"`

	// Kind is one of the Kind constants. Set at creation, never mutated.
	Kind string `json:"kind"`

	// TypeTags is the resource's type-tag set. It always includes the tag
	// for the resource's kind; Files carry additional sub-type tags here
	// (e.g. "pcdm:use:ExtractedText").
	TypeTags []string `json:"type_tags"`

	// CreatedAt is the timestamp of creation.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of last modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// NewResource creates an unsaved resource of the given kind, tagged with the
// kind's vocabulary tag. Returns ErrUnknownKind for unrecognized kinds.
func NewResource(kind string) (*Resource, error) {
	if !ValidKind(kind) {
		return nil, ErrUnknownKind
	}
	now := time.Now()
	return &Resource{
		Kind:      kind,
		TypeTags:  []string{KindTag(kind)},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Tag attaches a type tag to the resource. Idempotent: tagging with an
// already-present tag is a no-op.
func (r *Resource) Tag(tag string) {
	if r.HasType(tag) {
		return
	}
	r.TypeTags = append(r.TypeTags, tag)
	r.UpdatedAt = time.Now()
}

// HasType reports whether the resource carries the given type tag.
func (r *Resource) HasType(tag string) bool {
	for _, t := range r.TypeTags {
		if t == tag {
			return true
		}
	}
	return false
}
