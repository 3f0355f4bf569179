// Package news serves news posts.
//
//	GET  /news           published posts, newest first
//	GET  /news?all=true  every post, drafts included
//	POST /news           create a post
package news

import (
	"net/http"

	"github.com/aanand-mishra/school-cms-api/internal/http/handlers/resource"
	"github.com/aanand-mishra/school-cms-api/internal/storage"
	"github.com/aanand-mishra/school-cms-api/internal/types"
)

var spec = resource.Spec[types.News]{
	Name:        "news",
	Collection:  types.NewsCollection,
	Visibility:  []storage.Cond{storage.Eq("isPublished", true)},
	AllowAll:    true,
	Sort:        []storage.SortKey{storage.Desc(storage.CreatedAt)},
	ListError:   "Failed to fetch news",
	CreateError: "Failed to create news",
}

// GetList handles GET /news
// Lists published posts, newest first. ?all=true includes drafts.
//
// Success response (200 OK): a JSON array of posts, content fields flattened.
//
// Error responses:
//
//	500 Internal  {"error": "Failed to fetch news", "code": "internal_error"}
func GetList(store storage.Storage) http.HandlerFunc {
	return resource.List(store, spec)
}

// New handles POST /news
// Apart from isPublished (default true) and publishedAt, the body is stored
// as sent. At least one content field is required.
//
// Request body (JSON):
//
//	{ "title": "Annual day", "body": "...", "isPublished": false }
//
// Success response (201 Created): the stored post.
//
// Error responses:
//
//	500 Internal  {"error": "Failed to create news", "code": ..., "fields": [...]}
func New(store storage.Storage) http.HandlerFunc {
	return resource.Create[types.News, types.NewsInput](store, spec)
}
