package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/aanand-mishra/school-cms-api/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindContact(body string) (types.ContactMessage, error) {
	return Bind[types.ContactMessage, types.ContactMessageInput](strings.NewReader(body))
}

func requireValidationError(t *testing.T, err error, code string) *Error {
	t.Helper()
	var verr *Error
	require.True(t, errors.As(err, &verr), "expected *validation.Error, got %v", err)
	assert.Equal(t, code, verr.Code)
	return verr
}

func TestBindContactMessage(t *testing.T) {
	msg, err := bindContact(`{"name":" Asha ","phone":"123","email":"a@b.c","message":" hi "}`)
	require.NoError(t, err)

	assert.Equal(t, "Asha", msg.Name)
	assert.Equal(t, "hi", msg.Message)
	assert.False(t, msg.IsRead)
	assert.Empty(t, msg.ID)
}

func TestBindRejectsMissingAndBlankFields(t *testing.T) {
	_, err := bindContact(`{"phone":"123","email":"a@b.c","message":"   "}`)

	verr := requireValidationError(t, err, CodeValidationFailed)
	assert.ElementsMatch(t, []FieldError{
		{Field: "name", Rule: "required"},
		{Field: "message", Rule: "required"},
	}, verr.Fields)
}

func TestBindInvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty", body: ""},
		{name: "malformed", body: `{"name":`},
		{name: "wrong type", body: `{"name": 12}`},
		{name: "array", body: `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bindContact(tt.body)
			requireValidationError(t, err, CodeInvalidBody)
		})
	}
}

func TestBindNumericBounds(t *testing.T) {
	_, err := Bind[types.Section, types.SectionInput](strings.NewReader(`{"name":"A","description":"B","order":-1}`))

	verr := requireValidationError(t, err, CodeValidationFailed)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, FieldError{Field: "order", Rule: "gte", Param: "0"}, verr.Fields[0])
}

func TestBindCategoryRequiresSection(t *testing.T) {
	_, err := Bind[types.Category, types.CategoryInput](strings.NewReader(`{"name":"A","description":"B"}`))

	verr := requireValidationError(t, err, CodeValidationFailed)
	assert.Equal(t, []FieldError{{Field: "sectionId", Rule: "required"}}, verr.Fields)
}

func TestBindOpaqueResourcesNeedContent(t *testing.T) {
	_, err := Bind[types.Teacher, types.TeacherInput](strings.NewReader(`{"_id":"forged"}`))
	verr := requireValidationError(t, err, CodeValidationFailed)
	assert.Equal(t, []FieldError{{Field: "profile", Rule: "min", Param: "1"}}, verr.Fields)

	teacher, err := Bind[types.Teacher, types.TeacherInput](strings.NewReader(`{"name":"R. Iyer"}`))
	require.NoError(t, err)
	assert.Equal(t, types.Fields{"name": "R. Iyer"}, teacher.Profile)
}

func TestStructImage(t *testing.T) {
	err := Struct(types.Image{Filename: "a.png", OriginalName: "a.png", MimeType: "image/png"})

	verr := requireValidationError(t, err, CodeValidationFailed)
	assert.ElementsMatch(t, []FieldError{
		{Field: "size", Rule: "gt", Param: "0"},
		{Field: "data", Rule: "required"},
	}, verr.Fields)
}

func TestErrorMessage(t *testing.T) {
	err := &Error{Code: CodeValidationFailed, Fields: []FieldError{{Field: "name", Rule: "required"}}}
	assert.Equal(t, "validation_failed: field name failed required", err.Error())
}
