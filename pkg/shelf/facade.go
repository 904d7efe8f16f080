package shelf

import (
	"fmt"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// node is the query surface shared by Collection and Object facades. It
// holds no state of its own beyond the wrapped resource and the relation
// declarations; every query is answered from the store.
type node struct {
	res     *types.Resource
	store   types.Store
	members *Relation
	related *Relation
	parents *Relation
}

// Resource returns the wrapped resource.
func (n *node) Resource() *types.Resource { return n.res }

// ID returns the resource id, or "" if the resource is unsaved.
func (n *node) ID() string { return n.res.ID }

// Save persists the wrapped resource, assigning an id on first save.
func (n *node) Save() (string, error) { return n.store.Save(n.res) }

// Members returns the ordered containment relation.
func (n *node) Members() *Relation { return n.members }

// RelatedObjects returns the unordered, proxied related-objects relation.
func (n *node) RelatedObjects() *Relation { return n.related }

// MemberOfCollections returns the unordered, proxied relation tying this
// resource into parent collections.
func (n *node) MemberOfCollections() *Relation { return n.parents }

// membersOfKind filters the members relation by kind, preserving order.
func (n *node) membersOfKind(kind string) ([]*types.Resource, error) {
	all, err := n.members.All()
	if err != nil {
		return nil, err
	}
	matched := []*types.Resource{}
	for _, m := range all {
		if m.Kind == kind {
			matched = append(matched, m)
		}
	}
	return matched, nil
}

// Objects returns the members that are Objects, in members order.
func (n *node) Objects() ([]*types.Resource, error) {
	return n.membersOfKind(types.KindObject)
}

// Collections returns the members that are Collections, in members order.
func (n *node) Collections() ([]*types.Resource, error) {
	return n.membersOfKind(types.KindCollection)
}

func resourceIDs(resources []*types.Resource) []string {
	ids := make([]string, len(resources))
	for i, r := range resources {
		ids[i] = r.ID
	}
	return ids
}

// OrderedMemberIDs returns the ids of all members in insertion order.
func (n *node) OrderedMemberIDs() ([]string, error) {
	return n.members.IDs()
}

// OrderedObjectIDs returns the ids of Object members, preserving order.
func (n *node) OrderedObjectIDs() ([]string, error) {
	objects, err := n.Objects()
	if err != nil {
		return nil, err
	}
	return resourceIDs(objects), nil
}

// OrderedCollectionIDs returns the ids of Collection members, preserving order.
func (n *node) OrderedCollectionIDs() ([]string, error) {
	collections, err := n.Collections()
	if err != nil {
		return nil, err
	}
	return resourceIDs(collections), nil
}

// MemberOf returns every resource whose members relation includes this
// resource. A single indexed store query, not a graph traversal. An
// unsaved resource belongs to nothing and returns empty without querying
// the store.
func (n *node) MemberOf() ([]*types.Resource, error) {
	if n.res.ID == "" {
		return []*types.Resource{}, nil
	}
	parents, err := n.store.QueryByProperty(types.RelationMembers, n.res.ID)
	if err != nil {
		return nil, fmt.Errorf("querying parents of %s: %w", n.res.ID, err)
	}
	return parents, nil
}

// memberOfKind filters MemberOf by kind.
func (n *node) memberOfKind(kind string) ([]*types.Resource, error) {
	parents, err := n.MemberOf()
	if err != nil {
		return nil, err
	}
	matched := []*types.Resource{}
	for _, p := range parents {
		if p.Kind == kind {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// InCollections returns the parents that are Collections.
func (n *node) InCollections() ([]*types.Resource, error) {
	return n.memberOfKind(types.KindCollection)
}

// InObjects returns the parents that are Objects.
func (n *node) InObjects() ([]*types.Resource, error) {
	return n.memberOfKind(types.KindObject)
}

// MemberOfCollectionIDs returns the ids of the proxied
// member_of_collections relation as a set; the relation is unordered.
func (n *node) MemberOfCollectionIDs() (map[string]bool, error) {
	ids, err := n.parents.IDs()
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
