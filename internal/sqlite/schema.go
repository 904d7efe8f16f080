// Package sqlite implements the SQLite storage backend for Shelf.
package sqlite

// Schema DDL for all tables.
const (
	createResources = `CREATE TABLE IF NOT EXISTS resources (
    resource_id TEXT PRIMARY KEY,
    kind TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createResourceTypes = `CREATE TABLE IF NOT EXISTS resource_types (
    resource_id TEXT NOT NULL,
    type_tag TEXT NOT NULL,
    PRIMARY KEY (resource_id, type_tag),
    FOREIGN KEY (resource_id) REFERENCES resources(resource_id)
);`

	createEdges = `CREATE TABLE IF NOT EXISTS edges (
    edge_id TEXT PRIMARY KEY,
    relation TEXT NOT NULL,
    from_id TEXT NOT NULL,
    to_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    created_at TEXT NOT NULL
);`

	createEdgesIndex = `CREATE INDEX IF NOT EXISTS idx_edges_from
    ON edges(from_id, relation, position);`

	// Backs QueryByProperty: reverse membership lookups are a single
	// indexed query.
	createEdgesReverseIndex = `CREATE INDEX IF NOT EXISTS idx_edges_to
    ON edges(relation, to_id);`

	createProxies = `CREATE TABLE IF NOT EXISTS proxies (
    proxy_id TEXT PRIMARY KEY,
    relation TEXT NOT NULL,
    owner_id TEXT NOT NULL,
    target_id TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

	createProxiesIndex = `CREATE INDEX IF NOT EXISTS idx_proxies_owner
    ON proxies(owner_id, relation);`
)

// schemaStatements lists the DDL in execution order.
var schemaStatements = []string{
	createResources,
	createResourceTypes,
	createEdges,
	createEdgesIndex,
	createEdgesReverseIndex,
	createProxies,
	createProxiesIndex,
}
