// Shared helpers for shelf CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/shelf/pkg/memory"
	"github.com/mesh-intelligence/shelf/pkg/shelf"
	"github.com/mesh-intelligence/shelf/pkg/sqlite"
	"github.com/mesh-intelligence/shelf/pkg/types"
)

// newLogger builds the CLI logger: debug output with --verbose, silent
// otherwise.
func newLogger() *zap.SugaredLogger {
	if !flagVerbose {
		return zap.NewNop().Sugar()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning: falling back to no-op logger:", err)
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}

// attachStore resolves the data directory, creates the configured store
// backend, and attaches it. The caller must defer store.Detach().
func attachStore() (types.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	backend := configBackend
	if backend == "" {
		backend = defaultBackend
	}

	cfg := types.Config{
		Backend: backend,
		DataDir: dataDir,
	}

	var store types.Store
	switch backend {
	case types.BackendMemory:
		store = memory.NewStore()
	default:
		store = sqlite.NewStore(newLogger())
	}

	if err := store.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}
	return store, nil
}

// getResource resolves an id through the store.
func getResource(store types.Store, id string) (*types.Resource, error) {
	r, err := store.Get(id)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", id, err)
	}
	return r, nil
}

// membersRelation returns the members relation for a Collection or
// Object resource. Files have no members.
func membersRelation(store types.Store, res *types.Resource) (*shelf.Relation, error) {
	switch res.Kind {
	case types.KindCollection:
		col, err := shelf.AsCollection(store, res)
		if err != nil {
			return nil, err
		}
		return col.Members(), nil
	case types.KindObject:
		obj, err := shelf.AsObject(store, res)
		if err != nil {
			return nil, err
		}
		return obj.Members(), nil
	default:
		return nil, fmt.Errorf("%s resources have no members: %w", res.Kind, types.ErrWrongKind)
	}
}

// printResource writes a resource as text or JSON per the --json flag.
func printResource(r *types.Resource) error {
	if flagJSON {
		return printJSON(r)
	}
	fmt.Printf("ID:    %s\n", r.ID)
	fmt.Printf("Kind:  %s\n", r.Kind)
	fmt.Printf("Types: %v\n", r.TypeTags)
	return nil
}

// printIDs writes a list of resource ids as text or JSON.
func printIDs(ids []string) error {
	if flagJSON {
		return printJSON(ids)
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
