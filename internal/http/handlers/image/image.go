// Package image stores uploaded images in the document store and serves
// them back.
//
//	POST /images       multipart upload, form field "file"
//	GET  /images       metadata of every image, newest first (no bytes)
//	GET  /images/{id}  the raw image
//
// The content type is sniffed from the bytes; the client-declared type is
// ignored. Only raster formats are accepted: SVG can carry script and is
// rejected.
package image

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/aanand-mishra/school-cms-api/internal/http/handlers/resource"
	"github.com/aanand-mishra/school-cms-api/internal/storage"
	"github.com/aanand-mishra/school-cms-api/internal/types"
	"github.com/aanand-mishra/school-cms-api/internal/utils/response"
	"github.com/aanand-mishra/school-cms-api/internal/validation"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// FormField is the multipart field carrying the file.
const FormField = "file"

// Parts above this size are spooled to disk while parsing.
const maxMemory = 8 << 20

// AllowedTypes lists the MIME types accepted for upload.
var AllowedTypes = []string{"image/png", "image/jpeg", "image/gif", "image/webp", "image/avif"}

var spec = resource.Spec[types.Image]{
	Name:       "image",
	Collection: types.ImageCollection,
	Sort:       []storage.SortKey{storage.Desc(storage.CreatedAt)},
	Omit:       []string{"data"},
	ListError:  "Failed to fetch images",
}

// GetList handles GET /images
// Lists image metadata, newest first. The bytes are never included.
func GetList(store storage.Storage) http.HandlerFunc {
	return resource.List(store, spec)
}

// Upload handles POST /images.
//
// Success response (201 Created): the image metadata, without the bytes.
// Error response (500): { "error": "Failed to upload image", "code": ..., "fields": [...] }
func Upload(store storage.Storage) http.HandlerFunc {
	const failMsg = "Failed to upload image"

	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("uploading an image")

		img, err := readUpload(r)
		if err != nil {
			slog.Warn("rejected image", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.Failure(failMsg, err))
			return
		}

		if err := store.Insert(r.Context(), types.ImageCollection, &img); err != nil {
			slog.Error("error storing image", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.Failure(failMsg, err))
			return
		}

		slog.Info("image uploaded",
			slog.String("id", img.ID),
			slog.String("mimeType", img.MimeType),
			slog.Int64("size", img.Size))

		img.Data = nil
		response.WriteJSON(w, http.StatusCreated, img)
	}
}

// readUpload parses the multipart form and builds a validated Image.
func readUpload(r *http.Request) (types.Image, error) {
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return types.Image{}, &validation.Error{Code: validation.CodeInvalidBody, Reason: err.Error()}
	}

	file, header, err := r.FormFile(FormField)
	if errors.Is(err, http.ErrMissingFile) {
		return types.Image{}, fieldError("required")
	}
	if err != nil {
		return types.Image{}, &validation.Error{Code: validation.CodeInvalidBody, Reason: err.Error()}
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return types.Image{}, fmt.Errorf("read upload: %w", err)
	}

	mime := mimetype.Detect(data)
	if !allowed(mime) {
		return types.Image{}, fieldError("image")
	}

	img := types.Image{
		Filename:     uuid.NewString() + mime.Extension(),
		OriginalName: filepath.Base(header.Filename),
		MimeType:     mime.String(),
		Size:         int64(len(data)),
		Data:         data,
	}
	if err := validation.Struct(img); err != nil {
		return types.Image{}, err
	}

	return img, nil
}

func allowed(mime *mimetype.MIME) bool {
	for _, t := range AllowedTypes {
		if mime.Is(t) {
			return true
		}
	}
	return false
}

func fieldError(rule string) *validation.Error {
	return &validation.Error{
		Code:   validation.CodeValidationFailed,
		Reason: "validation failed",
		Fields: []validation.FieldError{{Field: FormField, Rule: rule}},
	}
}

// Get handles GET /images/{id} and writes the stored bytes.
func Get(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("getting an image", slog.String("id", id))

		var img types.Image
		err := store.FindByID(r.Context(), types.ImageCollection, id, &img)
		if errors.Is(err, storage.ErrNotFound) {
			response.WriteJSON(w, http.StatusNotFound, response.NotFound("Image not found"))
			return
		}
		if err != nil {
			slog.Error("error getting image",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.Failure("Failed to fetch image", err))
			return
		}

		w.Header().Set("Content-Type", img.MimeType)
		w.Header().Set("Content-Length", strconv.Itoa(len(img.Data)))
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; sandbox")
		// Stored images never change.
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		w.WriteHeader(http.StatusOK)
		w.Write(img.Data)
	}
}
