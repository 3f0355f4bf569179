// Package section serves website sections.
package section

import (
	"net/http"

	"github.com/aanand-mishra/school-cms-api/internal/http/handlers/resource"
	"github.com/aanand-mishra/school-cms-api/internal/storage"
	"github.com/aanand-mishra/school-cms-api/internal/types"
)

var spec = resource.Spec[types.Section]{
	Name:       "section",
	Collection: types.SectionCollection,
	Sort: []storage.SortKey{
		storage.Asc("order"),
		storage.Desc(storage.CreatedAt),
	},
	ListError:   "Failed to fetch sections",
	CreateError: "Failed to create section",
}

// GetList handles GET /sections
// Lists sections by order ascending, newest first within the same order.
func GetList(store storage.Storage) http.HandlerFunc {
	return resource.List(store, spec)
}

// New handles POST /sections
//
// Request body (JSON):
//
//	{ "name": "Academics", "description": "...", "order": 1, "endDate": "2025-03-31" }
//
// Error responses:
//
//	500 Internal  {"error": "Failed to create section", "code": ..., "fields": [...]}
func New(store storage.Storage) http.HandlerFunc {
	return resource.Create[types.Section, types.SectionInput](store, spec)
}
