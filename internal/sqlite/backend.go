package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// DatabaseFileName is the SQLite file created under DataDir.
const DatabaseFileName = "shelf.db"

// Backend implements types.Store over a SQLite database.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	logger   *zap.SugaredLogger
}

var _ types.Store = (*Backend)(nil)

// NewBackend creates a new SQLite backend instance. The backend is not
// attached; call Attach with a Config to initialize. A nil logger
// disables backend logging.
func NewBackend(logger *zap.SugaredLogger) *Backend {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Backend{logger: logger}
}

// newUUID generates a UUID v7 string.
func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Attach initializes the backend with the given configuration.
// Creates DataDir if it does not exist, opens the database, and applies
// the schema. Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, DatabaseFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("applying schema: %w", err)
		}
	}

	b.db = db
	b.config = config
	b.attached = true
	b.logger.Debugw("store attached", "path", dbPath)
	return nil
}

// Detach closes the database. Idempotent: multiple calls succeed.
// After Detach, operations return ErrStoreDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
		b.db = nil
	}
	b.attached = false
	b.logger.Debugw("store detached")
	return nil
}

// Get retrieves a resource with its type tags.
// Returns ErrNotFound if no resource exists with that ID.
func (b *Backend) Get(id string) (*types.Resource, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.getResource(id)
}

func (b *Backend) getResource(id string) (*types.Resource, error) {
	var r types.Resource
	var createdAt, updatedAt string
	err := b.db.QueryRow(
		"SELECT resource_id, kind, created_at, updated_at FROM resources WHERE resource_id = ?", id).
		Scan(&r.ID, &r.Kind, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning resource: %w", err)
	}
	r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing resource created_at: %w", err)
	}
	r.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing resource updated_at: %w", err)
	}
	if err := b.loadTypeTags(&r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (b *Backend) loadTypeTags(r *types.Resource) error {
	rows, err := b.db.Query(
		"SELECT type_tag FROM resource_types WHERE resource_id = ? ORDER BY rowid", r.ID)
	if err != nil {
		return fmt.Errorf("loading type tags: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return fmt.Errorf("scanning type tag: %w", err)
		}
		r.TypeTags = append(r.TypeTags, tag)
	}
	return rows.Err()
}

// Save creates or updates a resource. When the resource has no ID a new
// UUID v7 is assigned and written back.
func (b *Backend) Save(r *types.Resource) (string, error) {
	if r == nil {
		return "", types.ErrInvalidData
	}
	if !types.ValidKind(r.Kind) {
		return "", types.ErrUnknownKind
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return "", types.ErrStoreDetached
	}

	now := time.Now()
	if r.ID == "" {
		r.ID = newUUID()
		r.CreatedAt = now
	}
	r.UpdatedAt = now

	// The upsert and the tag-set replacement must land together: a
	// half-applied save would leave a typed resource untyped.
	tx, err := b.db.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO resources (resource_id, kind, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(resource_id) DO UPDATE SET
			updated_at = excluded.updated_at`,
		r.ID, r.Kind,
		r.CreatedAt.Format(time.RFC3339),
		r.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("upserting resource: %w", err)
	}

	// Replace the tag set: delete existing, re-insert all.
	if _, err := tx.Exec(
		"DELETE FROM resource_types WHERE resource_id = ?", r.ID); err != nil {
		return "", fmt.Errorf("clearing type tags: %w", err)
	}
	for _, tag := range r.TypeTags {
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO resource_types (resource_id, type_tag) VALUES (?, ?)",
			r.ID, tag); err != nil {
			return "", fmt.Errorf("inserting type tag: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing resource: %w", err)
	}
	return r.ID, nil
}

// QueryByProperty returns all resources holding a direct edge of the
// given relation to targetID. A single indexed query over the edges
// reverse index.
func (b *Backend) QueryByProperty(relation, targetID string) ([]*types.Resource, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := b.db.Query(
		"SELECT DISTINCT from_id FROM edges WHERE relation = ? AND to_id = ? ORDER BY from_id",
		relation, targetID)
	if err != nil {
		return nil, fmt.Errorf("querying by property: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning from_id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating from_ids: %w", err)
	}

	results := []*types.Resource{}
	for _, id := range ids {
		r, err := b.getResource(id)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}
