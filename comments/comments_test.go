package comments

import (
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"z3z/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st := store.NewWithFs(afero.NewMemMapFs(), "data")
	require.NoError(t, st.EnsureDir())
	return NewService(st)
}

func validInput() Input {
	return Input{
		Name:     "Ana",
		Email:    "a@b.com",
		Comment:  "Muito bom!",
		PostID:   "1",
		Category: "poemas",
		IP:       "203.0.113.7",
	}
}

func TestValidateReportsAllViolations(t *testing.T) {
	errs := Validate(Input{Name: "A", Email: "x", Comment: "hi"})
	// short name, bad email, short body, missing post reference
	assert.Len(t, errs, 4)
}

func TestValidateAccepts(t *testing.T) {
	assert.Empty(t, Validate(validInput()))
}

func TestValidateEmailPattern(t *testing.T) {
	in := validInput()
	for _, bad := range []string{"semarroba", "a@b", "a @b.com", "@b.com", "a@.com "} {
		in.Email = bad
		assert.NotEmpty(t, Validate(in), "email %q should fail", bad)
	}
	in.Email = "pessoa@dominio.com.br"
	assert.Empty(t, Validate(in))
}

func TestAddReturnsRedactedComment(t *testing.T) {
	svc := newTestService(t)

	public, err := svc.Add(validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, public.ID)
	assert.Equal(t, "Ana", public.Name)
	assert.Equal(t, "Muito bom!", public.Comment)
	assert.NotEmpty(t, public.Date)

	// the stored record keeps email and ip
	stored, err := svc.ForPost("poemas", "1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "a@b.com", stored[0].Email)
	assert.Equal(t, "203.0.113.7", stored[0].IP)
	assert.True(t, stored[0].Approved)
}

func TestAddValidationError(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Add(Input{Name: "A", Email: "x", Comment: "hi"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.GreaterOrEqual(t, len(verr.Errors), 3)
}

func TestForPostIsolatesBuckets(t *testing.T) {
	svc := newTestService(t)

	in := validInput()
	_, err := svc.Add(in)
	require.NoError(t, err)

	in.Category = "filosofia"
	_, err = svc.Add(in)
	require.NoError(t, err)

	poemas, err := svc.ForPost("poemas", "1")
	require.NoError(t, err)
	assert.Len(t, poemas, 1)

	none, err := svc.ForPost("poemas", "99")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeleteScansAllBuckets(t *testing.T) {
	svc := newTestService(t)

	in := validInput()
	in.Category = "religiao"
	public, err := svc.Add(in)
	require.NoError(t, err)

	removed, err := svc.Delete(public.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	// second delete reports not found
	removed, err = svc.Delete(public.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestStats(t *testing.T) {
	svc := newTestService(t)

	for i := 0; i < 12; i++ {
		in := validInput()
		in.PostID = fmt.Sprintf("%d", i%3)
		in.Comment = fmt.Sprintf("comentário número %d", i)
		_, err := svc.Add(in)
		require.NoError(t, err)
	}

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 12, stats.Total)
	assert.Equal(t, 4, stats.ByPost["poemas_0"])
	require.Len(t, stats.Recent, 10)

	// newest first: the last two added lead, the first two fall off
	assert.Equal(t, "comentário número 11", stats.Recent[0].Comment)
	assert.Equal(t, "comentário número 10", stats.Recent[1].Comment)
	assert.Equal(t, "comentário número 2", stats.Recent[9].Comment)
}
