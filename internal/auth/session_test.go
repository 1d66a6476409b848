package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueRequest(t *testing.T, s *Sessions, username string) *http.Request {
	t.Helper()

	rec := httptest.NewRecorder()
	require.NoError(t, s.Issue(rec, username))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/api/current_user", nil)
	req.AddCookie(cookies[0])
	return req
}

func TestSessionsRoundTrip(t *testing.T) {
	s := NewSessions("test-secret", time.Hour)

	req := issueRequest(t, s, "alice")
	username, ok := s.Read(req)
	assert.True(t, ok)
	assert.Equal(t, "alice", username)
}

func TestSessionsCookieFlags(t *testing.T) {
	s := NewSessions("test-secret", time.Hour)

	rec := httptest.NewRecorder()
	require.NoError(t, s.Issue(rec, "alice"))

	cookie := rec.Result().Cookies()[0]
	assert.Equal(t, CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
}

func TestSessionsMissingCookie(t *testing.T) {
	s := NewSessions("test-secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := s.Read(req)
	assert.False(t, ok)
}

func TestSessionsTamperedToken(t *testing.T) {
	s := NewSessions("test-secret", time.Hour)

	req := issueRequest(t, s, "alice")
	cookie, err := req.Cookie(CookieName)
	require.NoError(t, err)

	forged := httptest.NewRequest(http.MethodGet, "/", nil)
	forged.AddCookie(&http.Cookie{Name: CookieName, Value: cookie.Value + "x"})
	_, ok := s.Read(forged)
	assert.False(t, ok)
}

func TestSessionsWrongSecret(t *testing.T) {
	issuer := NewSessions("secret-a", time.Hour)
	verifier := NewSessions("secret-b", time.Hour)

	req := issueRequest(t, issuer, "alice")
	_, ok := verifier.Read(req)
	assert.False(t, ok)
}

func TestSessionsExpiredClaim(t *testing.T) {
	s := NewSessions("test-secret", -time.Minute)

	req := issueRequest(t, s, "alice")
	_, ok := s.Read(req)
	assert.False(t, ok)
}

func TestSessionsClear(t *testing.T) {
	s := NewSessions("test-secret", time.Hour)

	rec := httptest.NewRecorder()
	s.Clear(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
