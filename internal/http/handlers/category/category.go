// Package category serves the categories inside website sections.
//
//	GET  /categories               every category
//	GET  /categories?sectionId=ID  categories of one section
//	POST /categories               create a category
package category

import (
	"net/http"

	"github.com/aanand-mishra/school-cms-api/internal/http/handlers/resource"
	"github.com/aanand-mishra/school-cms-api/internal/storage"
	"github.com/aanand-mishra/school-cms-api/internal/types"
)

var spec = resource.Spec[types.Category]{
	Name:         "category",
	Collection:   types.CategoryCollection,
	QueryFilters: []string{"sectionId"},
	Sort: []storage.SortKey{
		storage.Asc("order"),
		storage.Desc(storage.CreatedAt),
	},
	ListError:   "Failed to fetch categories",
	CreateError: "Failed to create category",
}

// GetList handles GET /categories
// Lists categories by order ascending, newest first within the same order,
// optionally restricted to one section with ?sectionId=.
func GetList(store storage.Storage) http.HandlerFunc {
	return resource.List(store, spec)
}

// New handles POST /categories
//
// Request body (JSON):
//
//	{ "name": "Science", "description": "...", "sectionId": "665f...", "order": 2 }
//
// sectionId is not checked against existing sections.
//
// Error responses:
//
//	500 Internal  {"error": "Failed to create category", "code": ..., "fields": [...]}
func New(store storage.Storage) http.HandlerFunc {
	return resource.Create[types.Category, types.CategoryInput](store, spec)
}
