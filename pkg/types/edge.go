// Edge entity represents direct relation edges between resources.
package types

import "time"

// Relation names. Members and Files are realized as direct edges;
// RelatedObjects and MemberOfCollections are realized through proxies.
const (
	RelationMembers             = "members"
	RelationFiles               = "files"
	RelationRelatedObjects      = "related_objects"
	RelationMemberOfCollections = "member_of_collections"
)

// Position sentinels for AddEdge. Stored positions are assigned by the
// store: UnorderedPosition is kept verbatim for unordered relations, and
// OrderedAppend requests an append at the end of the ordered sequence
// (the store writes back one past the current maximum). Callers never
// supply concrete positions.
const (
	UnorderedPosition = -1
	OrderedAppend     = 0
)

// Edge represents a directed, optionally ordered edge in the containment
// graph, stored directly on the source resource's relation.
type Edge struct {
	// EdgeID is a UUID v7, generated on creation.
	EdgeID string `json:"edge_id"`

	// Relation is the relation name this edge belongs to.
	Relation string `json:"relation"`

	// FromID is the source resource ID.
	FromID string `json:"from_id"`

	// ToID is the target resource ID.
	ToID string `json:"to_id"`

	// Position is the insertion index within an ordered relation,
	// assigned by the store on AddEdge (see OrderedAppend).
	// UnorderedPosition for unordered relations. Positions may have gaps
	// after removals; only their relative order is meaningful.
	Position int `json:"position"`

	// CreatedAt is the timestamp of creation.
	CreatedAt time.Time `json:"created_at"`
}
