package types

import "errors"

// Store defines the interface for backend-agnostic resource storage.
// Callers attach to a backend, resolve ids to resources, persist resources
// and their relation records, and detach when done.
type Store interface {
	// Get retrieves the resource with the given ID.
	// Returns ErrNotFound if no resource exists with that ID.
	Get(id string) (*Resource, error)

	// Save creates or updates a resource. When the resource has no ID a
	// new UUID v7 is assigned and written back to the resource.
	// Returns the actual ID used.
	Save(r *Resource) (string, error)

	// QueryByProperty returns all resources holding a direct edge of the
	// given relation to targetID. A single indexed query, not a traversal.
	QueryByProperty(relation, targetID string) ([]*Resource, error)

	// Edges returns the direct edges of the relation declared on fromID,
	// in position order. Returns an empty slice when there are none.
	Edges(fromID, relation string) ([]*Edge, error)

	// AddEdge persists a direct edge. Assigns the edge ID and, for ordered
	// relations, the next position. Returns the edge ID.
	AddEdge(e *Edge) (string, error)

	// RemoveEdge deletes exactly one edge of the relation from fromID to
	// toID (the first in position order when duplicates exist). The
	// relative order of remaining edges is preserved.
	// Returns ErrNotFound if no such edge exists.
	RemoveEdge(fromID, relation, toID string) error

	// Proxies returns the proxy records of the relation owned by ownerID.
	// Iteration order is store-defined.
	Proxies(ownerID, relation string) ([]*Proxy, error)

	// AddProxy persists a proxy record, assigning its ID. Returns the ID.
	AddProxy(p *Proxy) (string, error)

	// RemoveProxy deletes the proxy record of the relation from ownerID to
	// targetID. Returns ErrNotFound if no such proxy exists.
	RemoveProxy(ownerID, relation, targetID string) error

	// Attach connects the Store to the backend described by config.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, operations return ErrStoreDetached.
	Detach() error
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
