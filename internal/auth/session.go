package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the name of the session cookie issued on login.
const CookieName = "fitlog_session"

// Sessions signs and verifies the identity claim carried in the session
// cookie. The cookie is HTTP-only and SameSite=None without the Secure flag
// so that a frontend served from another local origin can use it during
// development. Do not expose this configuration over plain HTTP in production.
type Sessions struct {
	secret []byte
	ttl    time.Duration
}

// NewSessions builds a session codec around the server-wide signing secret.
func NewSessions(secret string, ttl time.Duration) *Sessions {
	return &Sessions{secret: []byte(secret), ttl: ttl}
}

// Issue sets a cookie on the response asserting the given username. The
// cookie itself is a browser-session cookie; the signed claim inside it
// expires after the configured ttl.
func (s *Sessions) Issue(w http.ResponseWriter, username string) error {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return fmt.Errorf("sign session token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})
	return nil
}

// Read returns the username asserted by the request's session cookie, or
// false when the cookie is absent, expired, or fails signature verification.
func (s *Sessions) Read(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(cookie.Value, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}

// Clear expires the session cookie. Safe to call without an active session.
func (s *Sessions) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})
}
