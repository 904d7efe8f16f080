// Proxy entity represents one entry of an indirectly-realized relation.
package types

import "time"

// Proxy is a first-class relation record with its own id and lifecycle.
// A proxy is created when an indirect edge is added and deleted when the
// edge is removed; it is owned solely by the relation it realizes. The
// indirection bounds per-owner write size in the store instead of inlining
// every target into the owner's own property set.
type Proxy struct {
	// ProxyID is a UUID v7, generated on creation.
	ProxyID string `json:"proxy_id"`

	// Relation is the relation name this proxy realizes.
	Relation string `json:"relation"`

	// OwnerID is the resource the relation is declared on.
	OwnerID string `json:"owner_id"`

	// TargetID is the resource the entry points at.
	TargetID string `json:"target_id"`

	// CreatedAt is the timestamp of creation.
	CreatedAt time.Time `json:"created_at"`
}
