// Package routes registers every endpoint of the CMS on a ServeMux.
//
// Route table:
//
//	GET  /healthz                    liveness probe
//	GET  /contact                    POST /contact
//	GET  /news[?all=true]            POST /news
//	GET  /student-achievements[?all=true]
//	                                 POST /student-achievements
//	GET  /teachers                   POST /teachers
//	GET  /testimonials               POST /testimonials
//	GET  /sections                   POST /sections
//	GET  /categories[?sectionId=ID]  POST /categories
//	GET  /images                     POST /images (multipart)
//	GET  /images/{id}
package routes

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/school-cms-api/internal/config"
	"github.com/aanand-mishra/school-cms-api/internal/http/handlers/achievement"
	"github.com/aanand-mishra/school-cms-api/internal/http/handlers/category"
	"github.com/aanand-mishra/school-cms-api/internal/http/handlers/contact"
	"github.com/aanand-mishra/school-cms-api/internal/http/handlers/image"
	"github.com/aanand-mishra/school-cms-api/internal/http/handlers/news"
	"github.com/aanand-mishra/school-cms-api/internal/http/handlers/section"
	"github.com/aanand-mishra/school-cms-api/internal/http/handlers/teacher"
	"github.com/aanand-mishra/school-cms-api/internal/http/handlers/testimonial"
	"github.com/aanand-mishra/school-cms-api/internal/http/middleware"
	"github.com/aanand-mishra/school-cms-api/internal/storage"
	"github.com/aanand-mishra/school-cms-api/internal/utils/response"
)

// New builds the application handler around store.
func New(store storage.Storage, cfg config.HTTPServer, log *slog.Logger) http.Handler {
	router := http.NewServeMux()

	jsonBody := middleware.MaxBytes(cfg.MaxBodyBytes)
	uploadBody := middleware.MaxBytes(cfg.MaxUploadBytes)

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	router.HandleFunc("GET /contact", contact.GetList(store))
	router.Handle("POST /contact", jsonBody(contact.New(store)))

	router.HandleFunc("GET /news", news.GetList(store))
	router.Handle("POST /news", jsonBody(news.New(store)))

	router.HandleFunc("GET /student-achievements", achievement.GetList(store))
	router.Handle("POST /student-achievements", jsonBody(achievement.New(store)))

	router.HandleFunc("GET /teachers", teacher.GetList(store))
	router.Handle("POST /teachers", jsonBody(teacher.New(store)))

	router.HandleFunc("GET /testimonials", testimonial.GetList(store))
	router.Handle("POST /testimonials", jsonBody(testimonial.New(store)))

	router.HandleFunc("GET /sections", section.GetList(store))
	router.Handle("POST /sections", jsonBody(section.New(store)))

	router.HandleFunc("GET /categories", category.GetList(store))
	router.Handle("POST /categories", jsonBody(category.New(store)))

	router.HandleFunc("GET /images", image.GetList(store))
	router.Handle("POST /images", uploadBody(image.Upload(store)))
	router.HandleFunc("GET /images/{id}", image.Get(store))

	return middleware.Recover(log)(middleware.Logger(log)(router))
}
