// Package storage defines the Storage interface: the document-store
// contract every backend satisfies. Handlers depend only on this interface,
// so they run unchanged against MongoDB in production and SQLite locally or
// in tests.
//
// A backend stores one collection per resource and supports equality
// filters on top-level fields and an ordered list of sort keys.
package storage

import (
	"context"
	"errors"

	"github.com/aanand-mishra/school-cms-api/internal/types"
)

// ErrNotFound is returned by FindByID when no document has the given id.
var ErrNotFound = errors.New("document not found")

// CreatedAt is the field name of the creation timestamp every document has.
const CreatedAt = "createdAt"

// Cond is an equality condition on a top-level field.
type Cond struct {
	Field string
	Value any
}

// SortKey orders results by Field, descending when Desc is set.
type SortKey struct {
	Field string
	Desc  bool
}

// Query selects documents from a collection. The zero Query returns every
// document, newest first.
type Query struct {
	Filter []Cond
	Sort   []SortKey
	// Omit lists top-level fields left out of the returned documents.
	Omit []string
}

// Eq is shorthand for a single equality condition.
func Eq(field string, value any) Cond {
	return Cond{Field: field, Value: value}
}

// Asc and Desc build sort keys.
func Asc(field string) SortKey  { return SortKey{Field: field} }
func Desc(field string) SortKey { return SortKey{Field: field, Desc: true} }

// Storage is the database contract.
type Storage interface {
	// Insert assigns doc a new id and timestamps, then persists it in
	// collection. On success doc reflects exactly what was stored.
	Insert(ctx context.Context, collection string, doc types.Document) error

	// Find decodes every document matching q into out, which must be a
	// pointer to a slice. Ties left by q.Sort are broken newest first.
	Find(ctx context.Context, collection string, q Query, out any) error

	// FindByID decodes a single document into out (a pointer to a struct).
	// Returns ErrNotFound when the id is unknown.
	FindByID(ctx context.Context, collection string, id string, out any) error

	// Close releases the underlying connection.
	Close(ctx context.Context) error
}
