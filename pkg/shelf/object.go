package shelf

import (
	"go.uber.org/zap"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// Object is a work-level resource: it aggregates Objects (never
// Collections or Files) through its ordered members relation and directly
// contains Files through the unordered files relation.
type Object struct {
	node
	files *Relation
}

// NewObject creates an unsaved Object resource over the store.
func NewObject(store types.Store) (*Object, error) {
	return NewObjectWithLogger(store, nil)
}

// NewObjectWithLogger is NewObject with traversal logging for the
// ancestor checks gating the members relation.
func NewObjectWithLogger(store types.Store, logger *zap.SugaredLogger) (*Object, error) {
	res, err := types.NewResource(types.KindObject)
	if err != nil {
		return nil, err
	}
	return wrapObject(store, res, logger), nil
}

// AsObject wraps an existing Object resource.
// Returns ErrWrongKind if the resource is not an Object.
func AsObject(store types.Store, res *types.Resource) (*Object, error) {
	if res == nil {
		return nil, types.ErrInvalidData
	}
	if res.Kind != types.KindObject {
		return nil, types.ErrWrongKind
	}
	return wrapObject(store, res, nil), nil
}

func wrapObject(store types.Store, res *types.Resource, logger *zap.SugaredLogger) *Object {
	table := newValidatorTable(NewAncestorChecker(store, logger))
	return &Object{
		node: node{
			res:     res,
			store:   store,
			members: newRelation(types.RelationMembers, true, false, res, store, table.members[types.KindObject]),
			related: newRelation(types.RelationRelatedObjects, false, true, res, store, table.related),
			parents: newRelation(types.RelationMemberOfCollections, false, true, res, store, table.parents),
		},
		files: newRelation(types.RelationFiles, false, false, res, store, table.files),
	}
}

// Files returns the direct, unordered files relation.
func (o *Object) Files() *Relation { return o.files }

// FilterFilesByType returns the directly-contained files whose type-tag
// set includes tag.
func (o *Object) FilterFilesByType(tag string) ([]*types.Resource, error) {
	all, err := o.files.All()
	if err != nil {
		return nil, err
	}
	matched := []*types.Resource{}
	for _, f := range all {
		if f.HasType(tag) {
			matched = append(matched, f)
		}
	}
	return matched, nil
}

// FileOfType returns the first directly-contained file carrying tag.
// When none exists it creates a new File, tags it, attaches it through
// the files relation, and returns it. Idempotent with respect to existing
// matches: a second call never creates a duplicate.
func (o *Object) FileOfType(tag string) (*File, error) {
	matches, err := o.FilterFilesByType(tag)
	if err != nil {
		return nil, err
	}
	if len(matches) > 0 {
		return AsFile(o.store, matches[0])
	}

	file, err := NewFile(o.store)
	if err != nil {
		return nil, err
	}
	file.Tag(tag)
	if err := o.files.Add(file.Resource()); err != nil {
		return nil, err
	}
	return file, nil
}
