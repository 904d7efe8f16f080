// Package memstore implements an in-memory Store backend. It backs the
// "memory" backend selection and fast unit tests; semantics match the
// SQLite backend.
package memstore

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// Store implements types.Store with map-backed state.
type Store struct {
	mu        sync.RWMutex
	attached  bool
	resources map[string]*types.Resource
	edges     map[string][]*types.Edge  // keyed by FromID
	proxies   map[string][]*types.Proxy // keyed by OwnerID
}

var _ types.Store = (*Store)(nil)

// NewStore creates a new in-memory store. The store is not attached;
// call Attach with a Config to initialize.
func NewStore() *Store {
	return &Store{}
}

// newUUID generates a UUID v7 string.
func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Attach initializes the store. DataDir is ignored; state lives in memory.
// Returns ErrAlreadyAttached if already attached.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	s.resources = make(map[string]*types.Resource)
	s.edges = make(map[string][]*types.Edge)
	s.proxies = make(map[string][]*types.Proxy)
	s.attached = true
	return nil
}

// Detach discards all state. Idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resources = nil
	s.edges = nil
	s.proxies = nil
	s.attached = false
	return nil
}

// Get retrieves a resource by ID.
func (s *Store) Get(id string) (*types.Resource, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	r, ok := s.resources[id]
	if !ok {
		return nil, types.ErrNotFound
	}
	return copyResource(r), nil
}

// Save creates or updates a resource, assigning a UUID v7 on first save.
func (s *Store) Save(r *types.Resource) (string, error) {
	if r == nil {
		return "", types.ErrInvalidData
	}
	if !types.ValidKind(r.Kind) {
		return "", types.ErrUnknownKind
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return "", types.ErrStoreDetached
	}
	now := time.Now()
	if r.ID == "" {
		r.ID = newUUID()
		r.CreatedAt = now
	}
	r.UpdatedAt = now
	s.resources[r.ID] = copyResource(r)
	return r.ID, nil
}

// QueryByProperty returns resources holding a direct edge of relation to
// targetID. Results are ordered by resource ID for determinism.
func (s *Store) QueryByProperty(relation, targetID string) ([]*types.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}

	seen := make(map[string]bool)
	results := []*types.Resource{}
	for fromID, edges := range s.edges {
		for _, e := range edges {
			if e.Relation == relation && e.ToID == targetID && !seen[fromID] {
				seen[fromID] = true
				if r, ok := s.resources[fromID]; ok {
					results = append(results, copyResource(r))
				}
			}
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })
	return results, nil
}

// Edges returns the direct edges of a relation in position order.
func (s *Store) Edges(fromID, relation string) ([]*types.Edge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}

	results := []*types.Edge{}
	for _, e := range s.edges[fromID] {
		if e.Relation == relation {
			c := *e
			results = append(results, &c)
		}
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Position < results[j].Position })
	return results, nil
}

// AddEdge persists a direct edge, assigning its ID. Any position other
// than UnorderedPosition (OrderedAppend by convention) requests an
// append: the next position after the current maximum is assigned.
func (s *Store) AddEdge(e *types.Edge) (string, error) {
	if e == nil || e.FromID == "" || e.ToID == "" || e.Relation == "" {
		return "", types.ErrInvalidData
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return "", types.ErrStoreDetached
	}

	e.EdgeID = newUUID()
	e.CreatedAt = time.Now()
	if e.Position != types.UnorderedPosition {
		next := 0
		for _, existing := range s.edges[e.FromID] {
			if existing.Relation == e.Relation && existing.Position >= next {
				next = existing.Position + 1
			}
		}
		e.Position = next
	}
	c := *e
	s.edges[e.FromID] = append(s.edges[e.FromID], &c)
	return e.EdgeID, nil
}

// RemoveEdge deletes the first matching edge in position order.
func (s *Store) RemoveEdge(fromID, relation, toID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}

	edges := s.edges[fromID]
	matchIdx := -1
	for i, e := range edges {
		if e.Relation != relation || e.ToID != toID {
			continue
		}
		if matchIdx == -1 || e.Position < edges[matchIdx].Position {
			matchIdx = i
		}
	}
	if matchIdx == -1 {
		return types.ErrNotFound
	}
	s.edges[fromID] = append(edges[:matchIdx], edges[matchIdx+1:]...)
	return nil
}

// Proxies returns the proxy records of a relation owned by ownerID.
func (s *Store) Proxies(ownerID, relation string) ([]*types.Proxy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}

	results := []*types.Proxy{}
	for _, p := range s.proxies[ownerID] {
		if p.Relation == relation {
			c := *p
			results = append(results, &c)
		}
	}
	return results, nil
}

// AddProxy persists a proxy record, assigning its ID.
func (s *Store) AddProxy(p *types.Proxy) (string, error) {
	if p == nil || p.OwnerID == "" || p.TargetID == "" || p.Relation == "" {
		return "", types.ErrInvalidData
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return "", types.ErrStoreDetached
	}

	p.ProxyID = newUUID()
	p.CreatedAt = time.Now()
	c := *p
	s.proxies[p.OwnerID] = append(s.proxies[p.OwnerID], &c)
	return p.ProxyID, nil
}

// RemoveProxy deletes the matching proxy record.
func (s *Store) RemoveProxy(ownerID, relation, targetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}

	proxies := s.proxies[ownerID]
	for i, p := range proxies {
		if p.Relation == relation && p.TargetID == targetID {
			s.proxies[ownerID] = append(proxies[:i], proxies[i+1:]...)
			return nil
		}
	}
	return types.ErrNotFound
}

// copyResource returns a shallow copy with its own tag slice, so callers
// cannot mutate stored state through returned pointers.
func copyResource(r *types.Resource) *types.Resource {
	c := *r
	c.TypeTags = append([]string(nil), r.TypeTags...)
	return &c
}
