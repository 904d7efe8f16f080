// Edge and proxy persistence for the SQLite backend.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// Edges returns the direct edges of a relation in position order.
func (b *Backend) Edges(fromID, relation string) ([]*types.Edge, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := b.db.Query(
		"SELECT edge_id, relation, from_id, to_id, position, created_at FROM edges WHERE from_id = ? AND relation = ? ORDER BY position, created_at",
		fromID, relation)
	if err != nil {
		return nil, fmt.Errorf("fetching edges: %w", err)
	}
	defer rows.Close()

	results := []*types.Edge{}
	for rows.Next() {
		var e types.Edge
		var createdAt string
		if err := rows.Scan(&e.EdgeID, &e.Relation, &e.FromID, &e.ToID, &e.Position, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning edge: %w", err)
		}
		e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing edge created_at: %w", err)
		}
		results = append(results, &e)
	}
	return results, rows.Err()
}

// AddEdge persists a direct edge. Any position other than
// UnorderedPosition (OrderedAppend by convention) requests an append: the
// stored position is one past the current maximum for (from_id, relation).
func (b *Backend) AddEdge(e *types.Edge) (string, error) {
	if e == nil || e.FromID == "" || e.ToID == "" || e.Relation == "" {
		return "", types.ErrInvalidData
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return "", types.ErrStoreDetached
	}

	if e.Position != types.UnorderedPosition {
		var maxPos sql.NullInt64
		err := b.db.QueryRow(
			"SELECT MAX(position) FROM edges WHERE from_id = ? AND relation = ?",
			e.FromID, e.Relation).Scan(&maxPos)
		if err != nil {
			return "", fmt.Errorf("finding max position: %w", err)
		}
		if maxPos.Valid {
			e.Position = int(maxPos.Int64) + 1
		} else {
			e.Position = 0
		}
	}

	e.EdgeID = newUUID()
	e.CreatedAt = time.Now()

	_, err := b.db.Exec(
		"INSERT INTO edges (edge_id, relation, from_id, to_id, position, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		e.EdgeID, e.Relation, e.FromID, e.ToID, e.Position,
		e.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("inserting edge: %w", err)
	}

	b.logger.Debugw("edge added",
		"relation", e.Relation, "from", e.FromID, "to", e.ToID, "position", e.Position)
	return e.EdgeID, nil
}

// RemoveEdge deletes exactly one edge of the relation from fromID to toID:
// the first in position order when duplicates exist. Remaining positions
// keep their values; only relative order is meaningful, so the gap needs
// no renumbering.
func (b *Backend) RemoveEdge(fromID, relation, toID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}

	var edgeID string
	err := b.db.QueryRow(
		"SELECT edge_id FROM edges WHERE from_id = ? AND relation = ? AND to_id = ? ORDER BY position, created_at LIMIT 1",
		fromID, relation, toID).Scan(&edgeID)
	if err == sql.ErrNoRows {
		return types.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("finding edge: %w", err)
	}

	if _, err := b.db.Exec("DELETE FROM edges WHERE edge_id = ?", edgeID); err != nil {
		return fmt.Errorf("deleting edge: %w", err)
	}
	return nil
}

// Proxies returns the proxy records of a relation owned by ownerID, in
// creation order (store-defined; callers must not rely on it).
func (b *Backend) Proxies(ownerID, relation string) ([]*types.Proxy, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := b.db.Query(
		"SELECT proxy_id, relation, owner_id, target_id, created_at FROM proxies WHERE owner_id = ? AND relation = ? ORDER BY created_at",
		ownerID, relation)
	if err != nil {
		return nil, fmt.Errorf("fetching proxies: %w", err)
	}
	defer rows.Close()

	results := []*types.Proxy{}
	for rows.Next() {
		var p types.Proxy
		var createdAt string
		if err := rows.Scan(&p.ProxyID, &p.Relation, &p.OwnerID, &p.TargetID, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning proxy: %w", err)
		}
		p.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing proxy created_at: %w", err)
		}
		results = append(results, &p)
	}
	return results, rows.Err()
}

// AddProxy persists a proxy record, assigning its ID.
func (b *Backend) AddProxy(p *types.Proxy) (string, error) {
	if p == nil || p.OwnerID == "" || p.TargetID == "" || p.Relation == "" {
		return "", types.ErrInvalidData
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return "", types.ErrStoreDetached
	}

	p.ProxyID = newUUID()
	p.CreatedAt = time.Now()

	_, err := b.db.Exec(
		"INSERT INTO proxies (proxy_id, relation, owner_id, target_id, created_at) VALUES (?, ?, ?, ?, ?)",
		p.ProxyID, p.Relation, p.OwnerID, p.TargetID,
		p.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("inserting proxy: %w", err)
	}
	return p.ProxyID, nil
}

// RemoveProxy deletes the proxy record of the relation from ownerID to
// targetID.
func (b *Backend) RemoveProxy(ownerID, relation, targetID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}

	var proxyID string
	err := b.db.QueryRow(
		"SELECT proxy_id FROM proxies WHERE owner_id = ? AND relation = ? AND target_id = ? LIMIT 1",
		ownerID, relation, targetID).Scan(&proxyID)
	if err == sql.ErrNoRows {
		return types.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("finding proxy: %w", err)
	}

	if _, err := b.db.Exec("DELETE FROM proxies WHERE proxy_id = ?", proxyID); err != nil {
		return fmt.Errorf("deleting proxy: %w", err)
	}
	return nil
}
