// Package resource implements the list/create handler pair shared by every
// CMS resource. A resource package only describes itself with a Spec and
// wires the two factories:
//
//	router.HandleFunc("GET /news", news.GetList(store))
//	router.HandleFunc("POST /news", news.New(store))
//
// Like every handler factory in this module, List and Create are called
// once at startup and return the http.HandlerFunc served on each request.
package resource

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/school-cms-api/internal/storage"
	"github.com/aanand-mishra/school-cms-api/internal/types"
	"github.com/aanand-mishra/school-cms-api/internal/utils/response"
	"github.com/aanand-mishra/school-cms-api/internal/validation"
)

// AllParam is the query parameter that lifts the default visibility filter
// on resources that allow it.
const AllParam = "all"

// Spec describes one resource.
type Spec[T any] struct {
	// Name is used in log lines.
	Name       string
	Collection string

	// Visibility is the default listing filter. Empty means every
	// document is listed.
	Visibility []storage.Cond
	// AllowAll lets ?all=true drop Visibility.
	AllowAll bool
	// QueryFilters are query parameters turned into equality conditions
	// on the field of the same name when present.
	QueryFilters []string

	Sort []storage.SortKey
	Omit []string

	// Fixed client-facing messages.
	ListError   string
	CreateError string
}

// query builds the storage query for a list request.
func (s Spec[T]) query(r *http.Request) storage.Query {
	params := r.URL.Query()

	q := storage.Query{Sort: s.Sort, Omit: s.Omit}
	if !(s.AllowAll && params.Get(AllParam) == "true") {
		q.Filter = append(q.Filter, s.Visibility...)
	}
	for _, p := range s.QueryFilters {
		if v := params.Get(p); v != "" {
			q.Filter = append(q.Filter, storage.Eq(p, v))
		}
	}
	return q
}

// List handles GET /<resource>.
//
// Success response (200 OK): a JSON array, [] when nothing matches.
// Error response (500): { "error": spec.ListError, "code": "internal_error" }
func List[T any](store storage.Storage, spec Spec[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("listing "+spec.Name, slog.String("query", r.URL.RawQuery))

		items := make([]T, 0)
		if err := store.Find(r.Context(), spec.Collection, spec.query(r), &items); err != nil {
			slog.Error("error listing "+spec.Name, slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.Failure(spec.ListError, err))
			return
		}

		// A driver may hand back a nil slice for an empty result.
		if items == nil {
			items = []T{}
		}

		response.WriteJSON(w, http.StatusOK, items)
	}
}

// Create handles POST /<resource>. The body is decoded into In, normalized
// and validated into T, then inserted.
//
// Success response (201 Created): the stored document, including "_id",
// "createdAt" and "updatedAt".
// Error response (500): { "error": spec.CreateError, "code": ..., "fields": [...] }
//
// *T must implement types.Document; Create panics at startup otherwise.
func Create[T any, In validation.Normalizer[T]](store storage.Storage, spec Spec[T]) http.HandlerFunc {
	if _, ok := any(new(T)).(types.Document); !ok {
		panic(fmt.Sprintf("resource %s: *%T does not implement types.Document", spec.Name, *new(T)))
	}

	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating " + spec.Name)

		doc, err := validation.Bind[T, In](r.Body)
		if err != nil {
			slog.Warn("rejected "+spec.Name, slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.Failure(spec.CreateError, err))
			return
		}

		stored := any(&doc).(types.Document)
		if err := store.Insert(r.Context(), spec.Collection, stored); err != nil {
			slog.Error("error creating "+spec.Name, slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.Failure(spec.CreateError, err))
			return
		}

		slog.Info(spec.Name+" created", slog.String("id", stored.GetID()))
		response.WriteJSON(w, http.StatusCreated, doc)
	}
}
