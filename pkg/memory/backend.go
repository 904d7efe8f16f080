// Package memory provides the public API for the in-memory Shelf store,
// useful for tests and ephemeral graphs.
package memory

import (
	"github.com/mesh-intelligence/shelf/internal/memstore"
	"github.com/mesh-intelligence/shelf/pkg/types"
)

// NewStore creates a new in-memory store instance. The store is not
// attached; call Attach with a Config to initialize.
func NewStore() types.Store {
	return memstore.NewStore()
}
