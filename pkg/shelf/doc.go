// Package shelf implements the relationship and validation core of the
// Shelf containment model. Relation declarations define typed, optionally
// ordered edge-sets on a resource; every edge mutation is gated by a
// composite validator chain, and containment additions are additionally
// gated by an ancestor check that keeps the members graph acyclic.
package shelf
