// Package types holds the document models of the CMS. Keeping them in one
// place prevents import cycles: handlers, storage and validation can all
// import types without depending on each other.
//
// Every model comes in two shapes:
//
//   - the stored entity (ContactMessage, News, ...) carrying Meta, with
//     validate:"..." rules checked before it is persisted;
//   - an input type (ContactMessageInput, ...) decoded from the request
//     body, whose Normalize method trims strings and applies defaults.
package types

import "time"

// Meta is embedded in every stored document. Its values are assigned by
// the storage layer on insert and are never taken from client input.
type Meta struct {
	ID        string    `json:"_id" bson:"_id"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Stamp assigns identity and both timestamps.
func (m *Meta) Stamp(id string, now time.Time) {
	m.ID = id
	m.CreatedAt = now
	m.UpdatedAt = now
}

// GetID returns the id assigned by Stamp.
func (m Meta) GetID() string { return m.ID }

// Document is anything the storage layer can insert.
type Document interface {
	Stamp(id string, now time.Time)
	GetID() string
}
