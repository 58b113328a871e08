package auth

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"z3z/store"
)

func newTestService(t *testing.T, ttl time.Duration) *Service {
	t.Helper()
	st := store.NewWithFs(afero.NewMemMapFs(), "data")
	require.NoError(t, st.EnsureDir())

	hash, err := bcrypt.GenerateFromPassword([]byte("segredo123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, st.WriteJSON("admin.json", Account{
		Username: "admin",
		Password: string(hash),
		Name:     "Equipe Z3Z",
		Email:    "admin@z3z.blog",
	}))

	return NewService(st, NewManager(ttl))
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestService(t, time.Hour)

	sess, err := svc.Login("admin", "segredo123")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, "Equipe Z3Z", sess.Admin.Name)

	// the token resolves back to the live session
	got := svc.Sessions.Get(sess.Token)
	require.NotNil(t, got)
	assert.Equal(t, "admin", got.Admin.Username)
}

func TestLoginFailureIsGeneric(t *testing.T) {
	svc := newTestService(t, time.Hour)

	_, wrongPassword := svc.Login("admin", "errada")
	_, wrongUser := svc.Login("naoexiste", "segredo123")

	// wrong password and unknown username are indistinguishable
	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), wrongUser.Error())
}

func TestLoginMissingAccountFile(t *testing.T) {
	st := store.NewWithFs(afero.NewMemMapFs(), "data")
	require.NoError(t, st.EnsureDir())
	svc := NewService(st, NewManager(time.Hour))

	assert.False(t, svc.HasAccount())
	_, err := svc.Login("admin", "qualquer")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutDestroysSession(t *testing.T) {
	svc := newTestService(t, time.Hour)

	sess, err := svc.Login("admin", "segredo123")
	require.NoError(t, err)

	svc.Logout(sess.Token)
	assert.Nil(t, svc.Sessions.Get(sess.Token))
}

func TestSessionExpiry(t *testing.T) {
	m := NewManager(30 * time.Millisecond)
	sess, err := m.Create(Profile{Username: "admin"})
	require.NoError(t, err)

	require.NotNil(t, m.Get(sess.Token))

	time.Sleep(50 * time.Millisecond)
	assert.Nil(t, m.Get(sess.Token))
}

func TestSessionSlidingExpiry(t *testing.T) {
	m := NewManager(60 * time.Millisecond)
	sess, err := m.Create(Profile{Username: "admin"})
	require.NoError(t, err)

	// keep touching the session past the original deadline
	for i := 0; i < 4; i++ {
		time.Sleep(30 * time.Millisecond)
		require.NotNil(t, m.Get(sess.Token), "touch %d should slide expiry", i)
	}
}

func TestSessionUnknownToken(t *testing.T) {
	m := NewManager(time.Hour)
	assert.Nil(t, m.Get(""))
	assert.Nil(t, m.Get("token-desconhecido"))
}
