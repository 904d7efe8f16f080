package shelf

import (
	"fmt"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// Relation is one named, typed edge-set declared on a source resource.
// Ordered relations preserve insertion sequence exactly and allow
// duplicates; unordered relations have no guaranteed iteration order.
// Proxied relations store each entry as a Proxy record instead of a
// direct edge.
type Relation struct {
	name      string
	ordered   bool
	proxied   bool
	source    *types.Resource
	store     types.Store
	validator Validator
}

func newRelation(name string, ordered, proxied bool, source *types.Resource, store types.Store, validator Validator) *Relation {
	return &Relation{
		name:      name,
		ordered:   ordered,
		proxied:   proxied,
		source:    source,
		store:     store,
		validator: validator,
	}
}

// Name returns the relation name.
func (r *Relation) Name() string { return r.name }

// Ordered reports whether the relation preserves insertion order.
func (r *Relation) Ordered() bool { return r.ordered }

// Add validates target against the relation's validator chain and, on
// success, writes the edge. On validation failure the store is never
// touched. Unsaved source and target resources are saved first so both
// edge endpoints have ids; for ordered relations the target is appended
// at the end of the existing sequence.
func (r *Relation) Add(target *types.Resource) error {
	if target == nil {
		return types.ErrInvalidData
	}
	if err := r.validator.Validate(r.source, target); err != nil {
		return err
	}

	if r.source.ID == "" {
		if _, err := r.store.Save(r.source); err != nil {
			return fmt.Errorf("saving source for %s: %w", r.name, err)
		}
	}
	if target.ID == "" {
		if _, err := r.store.Save(target); err != nil {
			return fmt.Errorf("saving target for %s: %w", r.name, err)
		}
	}

	if r.proxied {
		_, err := r.store.AddProxy(&types.Proxy{
			Relation: r.name,
			OwnerID:  r.source.ID,
			TargetID: target.ID,
		})
		if err != nil {
			return fmt.Errorf("adding %s proxy: %w", r.name, err)
		}
		return nil
	}

	position := types.UnorderedPosition
	if r.ordered {
		position = types.OrderedAppend
	}
	_, err := r.store.AddEdge(&types.Edge{
		Relation: r.name,
		FromID:   r.source.ID,
		ToID:     target.ID,
		Position: position,
	})
	if err != nil {
		return fmt.Errorf("adding %s edge: %w", r.name, err)
	}
	return nil
}

// Remove deletes the edge to target: the matching proxy record, or for
// direct relations exactly one occurrence (the first match in order).
// The relative order of remaining entries is preserved.
// Returns ErrNotFound if target is not in the relation.
func (r *Relation) Remove(target *types.Resource) error {
	if target == nil {
		return types.ErrInvalidData
	}
	if target.ID == "" || r.source.ID == "" {
		// Unsaved resources have no edges in the store.
		return types.ErrNotFound
	}
	if r.proxied {
		return r.store.RemoveProxy(r.source.ID, r.name, target.ID)
	}
	return r.store.RemoveEdge(r.source.ID, r.name, target.ID)
}

// All returns the relation's targets: insertion order with duplicates
// preserved for ordered relations, store-defined order otherwise. Each
// call re-reads the store. An unsaved source has no edges and yields an
// empty slice without a store query.
func (r *Relation) All() ([]*types.Resource, error) {
	if r.source.ID == "" {
		return []*types.Resource{}, nil
	}

	var targetIDs []string
	if r.proxied {
		proxies, err := r.store.Proxies(r.source.ID, r.name)
		if err != nil {
			return nil, fmt.Errorf("reading %s proxies: %w", r.name, err)
		}
		for _, p := range proxies {
			targetIDs = append(targetIDs, p.TargetID)
		}
	} else {
		edges, err := r.store.Edges(r.source.ID, r.name)
		if err != nil {
			return nil, fmt.Errorf("reading %s edges: %w", r.name, err)
		}
		for _, e := range edges {
			targetIDs = append(targetIDs, e.ToID)
		}
	}

	results := make([]*types.Resource, 0, len(targetIDs))
	for _, id := range targetIDs {
		res, err := r.store.Get(id)
		if err != nil {
			return nil, fmt.Errorf("resolving %s target %s: %w", r.name, id, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// IDs returns All() mapped to resource ids, preserving order.
func (r *Relation) IDs() ([]string, error) {
	targets, err := r.All()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(targets))
	for i, t := range targets {
		ids[i] = t.ID
	}
	return ids, nil
}
