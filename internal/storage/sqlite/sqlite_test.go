package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aanand-mishra/school-cms-api/internal/storage"
	"github.com/aanand-mishra/school-cms-api/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore returns an in-memory store whose clock ticks one second per
// insert, so createdAt ordering is predictable.
func newTestStore(t *testing.T) *SQLite {
	t.Helper()

	s, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close(context.Background()) })

	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	seq := 0
	s.newID = func() string {
		seq++
		return fmt.Sprintf("id-%02d", seq)
	}
	return s
}

func TestInsertStampsDocument(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	msg := types.ContactMessage{Name: "Asha", Phone: "1", Email: "a@b.c", Message: "hi"}
	require.NoError(t, s.Insert(ctx, types.ContactCollection, &msg))

	assert.Equal(t, "id-01", msg.ID)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 1, 0, time.UTC), msg.CreatedAt)
	assert.Equal(t, msg.CreatedAt, msg.UpdatedAt)

	var got types.ContactMessage
	require.NoError(t, s.FindByID(ctx, types.ContactCollection, msg.ID, &got))
	assert.Equal(t, msg, got)
}

func TestFindEmptyCollection(t *testing.T) {
	s := newTestStore(t)

	var out []types.Teacher
	require.NoError(t, s.Find(context.Background(), types.TeacherCollection, storage.Query{}, &out))
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestFindFilterAndSort(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seed := []types.StudentAchievement{
		{Title: "a", Order: 2, IsActive: true},
		{Title: "b", Order: 1, IsActive: true},
		{Title: "c", Order: 1, IsActive: false},
		{Title: "d", Order: 1, IsActive: true},
		{Title: "e", Order: 0, IsActive: true},
	}
	for i := range seed {
		require.NoError(t, s.Insert(ctx, types.AchievementCollection, &seed[i]))
	}

	titles := func(items []types.StudentAchievement) []string {
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, it.Title)
		}
		return out
	}

	sort := []storage.SortKey{storage.Asc("order"), storage.Desc(storage.CreatedAt)}

	var active []types.StudentAchievement
	require.NoError(t, s.Find(ctx, types.AchievementCollection, storage.Query{
		Filter: []storage.Cond{storage.Eq("isActive", true)},
		Sort:   sort,
	}, &active))
	assert.Equal(t, []string{"e", "d", "b", "a"}, titles(active))

	var all []types.StudentAchievement
	require.NoError(t, s.Find(ctx, types.AchievementCollection, storage.Query{Sort: sort}, &all))
	assert.Equal(t, []string{"e", "d", "c", "b", "a"}, titles(all))

	var inactive []types.StudentAchievement
	require.NoError(t, s.Find(ctx, types.AchievementCollection, storage.Query{
		Filter: []storage.Cond{storage.Eq("isActive", false)},
	}, &inactive))
	assert.Equal(t, []string{"c"}, titles(inactive))
}

func TestFindDefaultOrderIsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, s.Insert(ctx, types.TeacherCollection, &types.Teacher{Profile: types.Fields{"name": name}}))
	}

	var out []types.Teacher
	require.NoError(t, s.Find(ctx, types.TeacherCollection, storage.Query{}, &out))
	require.Len(t, out, 3)
	assert.Equal(t, "third", out[0].Profile["name"])
	assert.Equal(t, "first", out[2].Profile["name"])
}

func TestFindStringFilter(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, sec := range []string{"s1", "s2", "s1"} {
		c := types.Category{Name: "n", Description: "d", SectionID: sec}
		require.NoError(t, s.Insert(ctx, types.CategoryCollection, &c))
	}

	var out []types.Category
	require.NoError(t, s.Find(ctx, types.CategoryCollection, storage.Query{
		Filter: []storage.Cond{storage.Eq("sectionId", "s1")},
	}, &out))
	assert.Len(t, out, 2)
}

func TestFindOmit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	img := types.Image{Filename: "f.png", OriginalName: "o.png", MimeType: "image/png", Size: 3, Data: []byte{1, 2, 3}}
	require.NoError(t, s.Insert(ctx, types.ImageCollection, &img))

	var list []types.Image
	require.NoError(t, s.Find(ctx, types.ImageCollection, storage.Query{Omit: []string{"data"}}, &list))
	require.Len(t, list, 1)
	assert.Nil(t, list[0].Data)
	assert.Equal(t, "f.png", list[0].Filename)

	var full types.Image
	require.NoError(t, s.FindByID(ctx, types.ImageCollection, img.ID, &full))
	assert.Equal(t, []byte{1, 2, 3}, full.Data)
}

func TestFindByIDNotFound(t *testing.T) {
	s := newTestStore(t)

	var out types.News
	err := s.FindByID(context.Background(), types.NewsCollection, "nope", &out)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRejectsUnsafeNames(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var out []types.News
	assert.Error(t, s.Find(ctx, `news"; DROP TABLE x; --`, storage.Query{}, &out))
	assert.Error(t, s.Find(ctx, types.NewsCollection, storage.Query{
		Filter: []storage.Cond{storage.Eq("a') OR 1=1 --", 1)},
	}, &out))
	assert.Error(t, s.Find(ctx, types.NewsCollection, storage.Query{
		Sort: []storage.SortKey{storage.Asc("x; DELETE")},
	}, &out))
}
