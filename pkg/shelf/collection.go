package shelf

import (
	"go.uber.org/zap"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// Collection aggregates Collections and Objects, never Files. Its members
// relation is ordered and acyclic; related objects and parent collections
// are unordered, proxied relations.
type Collection struct {
	node
}

// NewCollection creates an unsaved Collection resource over the store.
// The resource is persisted on first Save or first edge addition.
func NewCollection(store types.Store) (*Collection, error) {
	return NewCollectionWithLogger(store, nil)
}

// NewCollectionWithLogger is NewCollection with traversal logging for the
// ancestor checks gating the members relation.
func NewCollectionWithLogger(store types.Store, logger *zap.SugaredLogger) (*Collection, error) {
	res, err := types.NewResource(types.KindCollection)
	if err != nil {
		return nil, err
	}
	return wrapCollection(store, res, logger), nil
}

// AsCollection wraps an existing Collection resource.
// Returns ErrWrongKind if the resource is not a Collection.
func AsCollection(store types.Store, res *types.Resource) (*Collection, error) {
	if res == nil {
		return nil, types.ErrInvalidData
	}
	if res.Kind != types.KindCollection {
		return nil, types.ErrWrongKind
	}
	return wrapCollection(store, res, nil), nil
}

func wrapCollection(store types.Store, res *types.Resource, logger *zap.SugaredLogger) *Collection {
	table := newValidatorTable(NewAncestorChecker(store, logger))
	return &Collection{node: node{
		res:     res,
		store:   store,
		members: newRelation(types.RelationMembers, true, false, res, store, table.members[types.KindCollection]),
		related: newRelation(types.RelationRelatedObjects, false, true, res, store, table.related),
		parents: newRelation(types.RelationMemberOfCollections, false, true, res, store, table.parents),
	}}
}
