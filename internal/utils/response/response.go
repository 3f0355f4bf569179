// Package response provides helpers for writing consistent JSON HTTP responses.
//
// Success responses may be any JSON shape (a document, a list...).
// Error responses always look like:
//
//	{ "error": "Failed to fetch news", "code": "internal_error" }
//
// and, when input was rejected by a schema rule:
//
//	{ "error": "Failed to submit contact message", "code": "validation_failed",
//	  "fields": [ { "field": "name", "rule": "required" } ] }
//
// The message is always the fixed text chosen by the handler. Driver and
// validator messages are logged, never sent.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aanand-mishra/school-cms-api/internal/validation"
)

// Error codes not covered by package validation.
const (
	CodeInternal = "internal_error"
	CodeNotFound = "not_found"
)

// Response is the standard envelope returned for error cases.
type Response struct {
	Error  string                  `json:"error"`
	Code   string                  `json:"code"`
	Fields []validation.FieldError `json:"fields,omitempty"`
}

// WriteJSON writes a JSON-encoded response with the given HTTP status code.
// Header() → WriteHeader() → body: once the status is written the headers
// are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// Failure builds the error envelope for err under the fixed message.
// Validation errors keep their code and field list; anything else is
// reported as an internal error.
func Failure(message string, err error) Response {
	resp := Response{Error: message, Code: CodeInternal}

	var verr *validation.Error
	if errors.As(err, &verr) {
		resp.Code = verr.Code
		resp.Fields = verr.Fields
	}

	return resp
}

// NotFound builds the envelope for a missing document.
func NotFound(message string) Response {
	return Response{Error: message, Code: CodeNotFound}
}
