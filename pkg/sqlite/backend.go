// Package sqlite provides the public API for the SQLite Shelf store.
// It exposes the factory function for creating SQLite backends while
// keeping implementation details internal.
package sqlite

import (
	"go.uber.org/zap"

	"github.com/mesh-intelligence/shelf/internal/sqlite"
	"github.com/mesh-intelligence/shelf/pkg/types"
)

// NewStore creates a new SQLite store instance. The store is not
// attached; call Attach with a Config to initialize. A nil logger
// disables backend logging.
//
// Example:
//
//	store := sqlite.NewStore(nil)
//	err := store.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".shelf-db",
//	})
//	defer store.Detach()
func NewStore(logger *zap.SugaredLogger) types.Store {
	return sqlite.NewBackend(logger)
}
