package shelf

import "github.com/mesh-intelligence/shelf/pkg/types"

// File is a leaf resource carrying content metadata. Its type-tag set is
// used for sub-typing (e.g. "pcdm:use:ExtractedText"). A File is attached
// to exactly one Object through the object's files relation and has no
// membership edges of its own.
type File struct {
	res   *types.Resource
	store types.Store
}

// NewFile creates an unsaved File resource over the store.
func NewFile(store types.Store) (*File, error) {
	res, err := types.NewResource(types.KindFile)
	if err != nil {
		return nil, err
	}
	return &File{res: res, store: store}, nil
}

// AsFile wraps an existing File resource.
// Returns ErrWrongKind if the resource is not a File.
func AsFile(store types.Store, res *types.Resource) (*File, error) {
	if res == nil {
		return nil, types.ErrInvalidData
	}
	if res.Kind != types.KindFile {
		return nil, types.ErrWrongKind
	}
	return &File{res: res, store: store}, nil
}

// Resource returns the wrapped resource.
func (f *File) Resource() *types.Resource { return f.res }

// ID returns the resource id, or "" if the file is unsaved.
func (f *File) ID() string { return f.res.ID }

// Save persists the file, assigning an id on first save.
func (f *File) Save() (string, error) { return f.store.Save(f.res) }

// TypeTags returns the file's type-tag set.
func (f *File) TypeTags() []string { return f.res.TypeTags }

// Tag attaches a sub-type tag to the file's metadata. The change is not
// persisted until Save; when the file is already saved the caller must
// save again for the tag to be visible to FilterFilesByType.
func (f *File) Tag(tag string) { f.res.Tag(tag) }

// HasType reports whether the file's metadata carries tag.
func (f *File) HasType(tag string) bool { return f.res.HasType(tag) }
