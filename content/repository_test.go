package content

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"z3z/store"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	st := store.NewWithFs(afero.NewMemMapFs(), "data")
	require.NoError(t, st.EnsureDir())
	return NewRepository(st, Poemas)
}

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	repo := newTestRepo(t)

	first, err := repo.Create(Fields{Title: "Primeiro", Content: []string{"verso"}, Published: true})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)
	assert.NotEmpty(t, first.CreatedAt)
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)

	second, err := repo.Create(Fields{Title: "Segundo", Content: []string{"verso"}})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	got, err := repo.GetByID(second.ID)
	require.NoError(t, err)
	assert.Equal(t, "Segundo", got.Title)
	assert.Equal(t, []string{"verso"}, got.Content)
}

func TestCreateReusesGapFreeMaxID(t *testing.T) {
	repo := newTestRepo(t)

	a, _ := repo.Create(Fields{Title: "a", Content: []string{"x"}})
	b, _ := repo.Create(Fields{Title: "b", Content: []string{"x"}})
	removed, err := repo.Delete(a.ID)
	require.NoError(t, err)
	require.True(t, removed)

	c, err := repo.Create(Fields{Title: "c", Content: []string{"x"}})
	require.NoError(t, err)
	assert.Equal(t, b.ID+1, c.ID)
}

func TestCreateRejectsEmptyContent(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.Create(Fields{Title: "vazio"})
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestListPublishedFilter(t *testing.T) {
	repo := newTestRepo(t)
	repo.Create(Fields{Title: "público", Content: []string{"x"}, Published: true})
	repo.Create(Fields{Title: "rascunho", Content: []string{"x"}, Published: false})

	public, err := repo.List(true)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "público", public[0].Title)
	for _, it := range public {
		assert.True(t, it.Published)
	}

	all, err := repo.List(false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListEmptyCollection(t *testing.T) {
	repo := newTestRepo(t)
	items, err := repo.List(false)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUpdateShallowMerge(t *testing.T) {
	repo := newTestRepo(t)
	created, err := repo.Create(Fields{
		Title:     "Original",
		Content:   []string{"linha"},
		Category:  "existencial",
		Tags:      []string{"alma"},
		Published: true,
		Date:      "2025-01-05",
		Author:    "Equipe Z3Z",
	})
	require.NoError(t, err)

	newTitle := "Alterado"
	updated, err := repo.Update(created.ID, Patch{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "Alterado", updated.Title)
	// omitted fields keep their stored values
	assert.Equal(t, []string{"linha"}, updated.Content)
	assert.Equal(t, "existencial", updated.Category)
	assert.Equal(t, []string{"alma"}, updated.Tags)
	assert.True(t, updated.Published)
	assert.Equal(t, "2025-01-05", updated.Date)
	assert.Equal(t, "Equipe Z3Z", updated.Author)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.NotEqual(t, created.UpdatedAt, updated.UpdatedAt)
}

func TestUpdateNotFound(t *testing.T) {
	repo := newTestRepo(t)
	title := "x"
	_, err := repo.Update(99, Patch{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteReportsOutcome(t *testing.T) {
	repo := newTestRepo(t)
	created, _ := repo.Create(Fields{Title: "a", Content: []string{"x"}})
	other, _ := repo.Create(Fields{Title: "b", Content: []string{"x"}})

	removed, err := repo.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	// second delete of the same id is a distinct not-found outcome
	removed, err = repo.Delete(created.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	// the other item is untouched
	got, err := repo.GetByID(other.ID)
	require.NoError(t, err)
	assert.Equal(t, "b", got.Title)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.GetByID(42)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestImageURLSanitizedOnWrite(t *testing.T) {
	repo := newTestRepo(t)

	created, err := repo.Create(Fields{Title: "a", Content: []string{"x"}, Image: "not a url"})
	require.NoError(t, err)
	assert.Empty(t, created.Image)

	goodURL := "https://example.com/imagem.png"
	updated, err := repo.Update(created.ID, Patch{Image: &goodURL})
	require.NoError(t, err)
	assert.Equal(t, goodURL, updated.Image)

	badURL := "javascript:alert(1)"
	updated, err = repo.Update(created.ID, Patch{Image: &badURL})
	require.NoError(t, err)
	assert.Empty(t, updated.Image)
}

func TestExcerptTruncation(t *testing.T) {
	long := ""
	for i := 0; i < 40; i++ {
		long += "palavra "
	}
	it := Item{Content: []string{long}}
	excerpt := it.Excerpt()
	assert.LessOrEqual(t, len([]rune(excerpt)), 153)
	assert.Contains(t, excerpt, "...")

	short := Item{Content: []string{"curto"}}
	assert.Equal(t, "curto", short.Excerpt())

	assert.Empty(t, Item{}.Excerpt())
}
