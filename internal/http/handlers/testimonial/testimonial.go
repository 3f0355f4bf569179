// Package testimonial serves testimonials.
//
// Listings only ever contain approved testimonials; unlike news and
// achievements there is no ?all=true bypass.
package testimonial

import (
	"net/http"

	"github.com/aanand-mishra/school-cms-api/internal/http/handlers/resource"
	"github.com/aanand-mishra/school-cms-api/internal/storage"
	"github.com/aanand-mishra/school-cms-api/internal/types"
)

var spec = resource.Spec[types.Testimonial]{
	Name:        "testimonial",
	Collection:  types.TestimonialCollection,
	Visibility:  []storage.Cond{storage.Eq("isApproved", true)},
	Sort:        []storage.SortKey{storage.Desc(storage.CreatedAt)},
	ListError:   "Failed to fetch testimonials",
	CreateError: "Failed to create testimonial",
}

// GetList handles GET /testimonials
// Lists approved testimonials, newest first.
//
// Error responses:
//
//	500 Internal  {"error": "Failed to fetch testimonials", "code": "internal_error"}
func GetList(store storage.Storage) http.HandlerFunc {
	return resource.List(store, spec)
}

// New handles POST /testimonials
// isApproved defaults to false; the rest of the body is stored as sent.
//
// Request body (JSON):
//
//	{ "name": "Parent of Meera", "quote": "..." }
//
// Success response (201 Created): the stored testimonial.
func New(store storage.Storage) http.HandlerFunc {
	return resource.Create[types.Testimonial, types.TestimonialInput](store, spec)
}
