// Package achievement serves student achievements.
//
//	GET  /student-achievements           active achievements
//	GET  /student-achievements?all=true  every achievement
//	POST /student-achievements           create an achievement
//
// Listings are ordered by "order" ascending, newest first within the same
// order.
package achievement

import (
	"net/http"

	"github.com/aanand-mishra/school-cms-api/internal/http/handlers/resource"
	"github.com/aanand-mishra/school-cms-api/internal/storage"
	"github.com/aanand-mishra/school-cms-api/internal/types"
)

var spec = resource.Spec[types.StudentAchievement]{
	Name:       "student achievement",
	Collection: types.AchievementCollection,
	Visibility: []storage.Cond{storage.Eq("isActive", true)},
	AllowAll:   true,
	Sort: []storage.SortKey{
		storage.Asc("order"),
		storage.Desc(storage.CreatedAt),
	},
	ListError:   "Failed to fetch student achievements",
	CreateError: "Failed to create student achievement",
}

// GetList handles GET /student-achievements
// Lists active achievements by order ascending, newest first within the
// same order. ?all=true includes inactive ones.
//
// Error responses:
//
//	500 Internal  {"error": "Failed to fetch student achievements", "code": "internal_error"}
func GetList(store storage.Storage) http.HandlerFunc {
	return resource.List(store, spec)
}

// New handles POST /student-achievements
//
// Request body (JSON):
//
//	{ "image": "/images/42", "title": "State chess champion", "description": "...", "studentName": "Ravi", "order": 1 }
//
// isActive defaults to true and order to 0.
//
// Success response (201 Created): the stored achievement.
//
// Error responses:
//
//	500 Internal  {"error": "Failed to create student achievement", "code": ..., "fields": [...]}
func New(store storage.Storage) http.HandlerFunc {
	return resource.Create[types.StudentAchievement, types.StudentAchievementInput](store, spec)
}
