// Package contact serves messages sent through the website contact form.
//
//	GET  /contact   every message, newest first
//	POST /contact   submit a message
package contact

import (
	"net/http"

	"github.com/aanand-mishra/school-cms-api/internal/http/handlers/resource"
	"github.com/aanand-mishra/school-cms-api/internal/storage"
	"github.com/aanand-mishra/school-cms-api/internal/types"
)

var spec = resource.Spec[types.ContactMessage]{
	Name:        "contact message",
	Collection:  types.ContactCollection,
	Sort:        []storage.SortKey{storage.Desc(storage.CreatedAt)},
	ListError:   "Failed to fetch contact messages",
	CreateError: "Failed to submit contact message",
}

// GetList handles GET /contact
// Lists every contact message, newest first.
//
// Success response (200 OK):
//
//	[ { "_id": "...", "name": "Asha", "phone": "...", "email": "...", "message": "...", "isRead": false, "createdAt": "...", "updatedAt": "..." } ]
//
// Error responses:
//
//	500 Internal  {"error": "Failed to fetch contact messages", "code": "internal_error"}
func GetList(store storage.Storage) http.HandlerFunc {
	return resource.List(store, spec)
}

// New handles POST /contact
// Stores a message sent through the contact form.
//
// Request body (JSON):
//
//	{ "name": "Asha", "phone": "+91 98000 00000", "email": "asha@example.com", "message": "..." }
//
// Success response (201 Created): the stored message with "_id",
// "createdAt" and "updatedAt".
//
// Error responses:
//
//	500 Internal  {"error": "Failed to submit contact message", "code": "validation_failed" | "invalid_body" | "internal_error"}
func New(store storage.Storage) http.HandlerFunc {
	return resource.Create[types.ContactMessage, types.ContactMessageInput](store, spec)
}
