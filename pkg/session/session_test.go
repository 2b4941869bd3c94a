package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Payphone-Digital/landing-cms/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T, secret string) *Manager {
	t.Helper()
	m, err := NewManager(config.CookieConfig{
		Name:     "access_token",
		HashKey:  secret,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	}, time.Hour)
	require.NoError(t, err)
	return m
}

func TestManager_SetAndRead(t *testing.T) {
	m := newManager(t, "0123456789abcdef0123456789abcdef")

	rec := httptest.NewRecorder()
	require.NoError(t, m.Set(rec, "jwt-token"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "access_token", c.Name)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.NotEqual(t, "jwt-token", c.Value)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	token, err := m.Read(req)
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
}

func TestManager_ReadMissingCookie(t *testing.T) {
	m := newManager(t, "secret")
	_, err := m.Read(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, ErrNoCookie)
}

func TestManager_ReadTamperedCookie(t *testing.T) {
	signer := newManager(t, "secret-a")
	verifier := newManager(t, "secret-b")

	rec := httptest.NewRecorder()
	require.NoError(t, signer.Set(rec, "jwt-token"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(rec.Result().Cookies()[0])

	_, err := verifier.Read(req)
	require.Error(t, err)
	assert.True(t, IsDecodeError(err))
}

func TestManager_Clear(t *testing.T) {
	m := newManager(t, "secret")
	rec := httptest.NewRecorder()
	m.Clear(rec)

	c := rec.Result().Cookies()[0]
	assert.Equal(t, "", c.Value)
	assert.Less(t, c.MaxAge, 0)
}

func TestNewManager_RejectsBadBlockKey(t *testing.T) {
	_, err := NewManager(config.CookieConfig{Name: "x", HashKey: "k", BlockKey: "short"}, time.Hour)
	assert.Error(t, err)
}
