// Package teacher serves the staff directory.
package teacher

import (
	"net/http"

	"github.com/aanand-mishra/school-cms-api/internal/http/handlers/resource"
	"github.com/aanand-mishra/school-cms-api/internal/storage"
	"github.com/aanand-mishra/school-cms-api/internal/types"
)

var spec = resource.Spec[types.Teacher]{
	Name:        "teacher",
	Collection:  types.TeacherCollection,
	Sort:        []storage.SortKey{storage.Desc(storage.CreatedAt)},
	ListError:   "Failed to fetch teachers",
	CreateError: "Failed to create teacher",
}

// GetList handles GET /teachers
// Lists every teacher profile, newest first.
func GetList(store storage.Storage) http.HandlerFunc {
	return resource.List(store, spec)
}

// New handles POST /teachers
// The profile is schema-less: every key except the server-owned ones
// ("_id", "createdAt", "updatedAt") is stored as sent.
//
// Request body (JSON):
//
//	{ "name": "R. Iyer", "subject": "Physics", "photo": "/images/7" }
//
// Error responses:
//
//	500 Internal  {"error": "Failed to create teacher", "code": ..., "fields": [...]}
func New(store storage.Storage) http.HandlerFunc {
	return resource.Create[types.Teacher, types.TeacherInput](store, spec)
}
