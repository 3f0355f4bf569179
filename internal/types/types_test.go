package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactMessageInputNormalizeTrims(t *testing.T) {
	in := ContactMessageInput{
		Name:    "  Asha ",
		Phone:   "\t+91 98000 00000\n",
		Email:   " asha@example.com ",
		Message: "  hello  ",
	}

	got := in.Normalize()

	assert.Equal(t, "Asha", got.Name)
	assert.Equal(t, "+91 98000 00000", got.Phone)
	assert.Equal(t, "asha@example.com", got.Email)
	assert.Equal(t, "hello", got.Message)
	assert.False(t, got.IsRead)
}

func TestStudentAchievementInputDefaults(t *testing.T) {
	var in StudentAchievementInput
	require.NoError(t, json.Unmarshal([]byte(`{"title":" Gold ","description":"d","image":"i.png"}`), &in))

	got := in.Normalize()
	assert.True(t, got.IsActive)
	assert.Equal(t, 0, got.Order)
	assert.Equal(t, "Gold", got.Title)

	require.NoError(t, json.Unmarshal([]byte(`{"isActive":false,"order":3}`), &in))
	got = in.Normalize()
	assert.False(t, got.IsActive)
	assert.Equal(t, 3, got.Order)
}

func TestNewsInputKeepsOpaqueContent(t *testing.T) {
	var in NewsInput
	body := `{"title":"Sports day","body":"All welcome","_id":"x","createdAt":"2020-01-01T00:00:00Z","isPublished":false}`
	require.NoError(t, json.Unmarshal([]byte(body), &in))

	got := in.Normalize()

	assert.False(t, got.IsPublished)
	assert.Nil(t, got.PublishedAt)
	assert.Equal(t, Fields{"title": "Sports day", "body": "All welcome"}, got.Content)
}

func TestNewsStampSetsPublishedAt(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	published := NewsInput{Content: Fields{"title": "a"}}.Normalize()
	published.Stamp("id-1", now)
	require.NotNil(t, published.PublishedAt)
	assert.Equal(t, now, *published.PublishedAt)
	assert.Equal(t, "id-1", published.ID)

	draft := NewsInput{IsPublished: new(bool), Content: Fields{"title": "b"}}.Normalize()
	draft.Stamp("id-2", now)
	assert.Nil(t, draft.PublishedAt)
}

func TestNewsJSONFlattensContent(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	n := News{IsPublished: true, Content: Fields{"title": "Hello", "isPublished": "ignored"}}
	n.Stamp("abc", now)

	data, err := json.Marshal(n)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "abc", raw["_id"])
	assert.Equal(t, "Hello", raw["title"])
	assert.Equal(t, true, raw["isPublished"])
	assert.Contains(t, raw, "createdAt")
	assert.Contains(t, raw, "updatedAt")
	assert.Contains(t, raw, "publishedAt")

	var back News
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "abc", back.ID)
	assert.True(t, back.IsPublished)
	assert.Equal(t, Fields{"title": "Hello"}, back.Content)
}

func TestTeacherJSON(t *testing.T) {
	var in TeacherInput
	require.NoError(t, json.Unmarshal([]byte(`{"name":"R. Iyer","subject":"Physics","updatedAt":"x"}`), &in))
	teacher := in.Normalize()
	assert.Equal(t, Fields{"name": "R. Iyer", "subject": "Physics"}, teacher.Profile)

	teacher.Stamp("t1", time.Unix(0, 0).UTC())
	data, err := json.Marshal(teacher)
	require.NoError(t, err)

	var back Teacher
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "t1", back.ID)
	assert.Equal(t, teacher.Profile, back.Profile)
}

func TestTeacherInputStripsReservedKeysInAnyCase(t *testing.T) {
	var in TeacherInput
	body := `{"name":"R. Iyer","CreatedAt":"1999-01-01T00:00:00Z","ID":"forged","_ID":"x","UpdatedAt":"y"}`
	require.NoError(t, json.Unmarshal([]byte(body), &in))

	teacher := in.Normalize()
	assert.Equal(t, Fields{"name": "R. Iyer"}, teacher.Profile)

	teacher.Stamp("t1", time.Unix(0, 0).UTC())
	data, err := json.Marshal(teacher)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"_id": "t1",
		"createdAt": "1970-01-01T00:00:00Z",
		"updatedAt": "1970-01-01T00:00:00Z",
		"name": "R. Iyer"
	}`, string(data))
}

func TestTestimonialInputDeclaredKeysInAnyCase(t *testing.T) {
	var in TestimonialInput
	require.NoError(t, json.Unmarshal([]byte(`{"quote":"q","IsApproved":true}`), &in))

	testimonial := in.Normalize()
	assert.True(t, testimonial.IsApproved)
	assert.Equal(t, Fields{"quote": "q"}, testimonial.Content)
}

func TestTeacherInputRejectsNonObject(t *testing.T) {
	var in TeacherInput
	assert.Error(t, json.Unmarshal([]byte(`["a"]`), &in))
}

func TestSectionInputDates(t *testing.T) {
	var in SectionInput
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Primary","description":"d","endDate":"2025-03-31"}`), &in))

	got := in.Normalize()
	require.NotNil(t, got.EndDate)
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), *got.EndDate)

	require.NoError(t, json.Unmarshal([]byte(`{"endDate":"2025-03-31T12:30:00+05:30"}`), &in))
	got = in.Normalize()
	require.NotNil(t, got.EndDate)
	assert.Equal(t, time.Date(2025, 3, 31, 7, 0, 0, 0, time.UTC), *got.EndDate)

	assert.Error(t, json.Unmarshal([]byte(`{"endDate":"next week"}`), &in))
}
