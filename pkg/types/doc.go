// Package types defines the Store interface, entity types, and standard
// error types for the Shelf containment model: resources classified as
// Collections, Objects, and Files, connected by typed edges and proxy
// records.
package types
