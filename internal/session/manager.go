// Package session implements the client-side session contract: all session
// state travels inside an encrypted, authenticated cookie and the server
// keeps no session table. The cookie carries a single meaningful key, the
// authenticated user's id.
package session

import (
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/gorilla/securecookie"
)

// userIDKey is the only key stored in the session payload.
const userIDKey = "user_id"

// Session is the decoded per-request session state. The zero value is an
// anonymous session.
type Session struct {
	// UserID references a registry record id, or is empty when the client
	// is not logged in.
	UserID string
}

// IsAuthenticated reports whether the session carries a user id. Whether
// that id still resolves against the registry is the auth service's call.
func (s *Session) IsAuthenticated() bool {
	return s.UserID != ""
}

// Manager encodes and decodes the session cookie.
//
// Encoding uses AES-encrypted, HMAC-authenticated values (gorilla's
// securecookie), so the client can neither read nor forge session state.
// The manager is stateless and safe for concurrent use.
type Manager struct {
	codec      *securecookie.SecureCookie
	cookieName string
	secure     bool
}

// NewManager constructs a Manager.
//
// secretHex must be empty or 64 hex characters (a 256-bit key). When empty,
// a transient random key is generated: sessions then work normally but do
// not survive a process restart. The caller is expected to warn about that
// and to refuse it in production.
//
// secure controls the cookie's Secure attribute and should be true exactly
// in production deployments.
func NewManager(secretHex, cookieName string, secure bool) (*Manager, error) {
	var key []byte
	if secretHex == "" {
		key = securecookie.GenerateRandomKey(32)
		if key == nil {
			return nil, ErrKeyGeneration
		}
	} else {
		decoded, err := hex.DecodeString(secretHex)
		if err != nil || len(decoded) != 32 {
			return nil, ErrInvalidSecret
		}
		key = decoded
	}

	codec := securecookie.New(key, key)
	// The design enforces no session expiry; disable securecookie's default
	// 30-day timestamp check so old cookies stay valid.
	codec.MaxAge(0)

	return &Manager{
		codec:      codec,
		cookieName: cookieName,
		secure:     secure,
	}, nil
}

// Load returns the session carried by r.
//
// A missing cookie, a tampered cookie, or a cookie sealed under a different
// key all yield the same anonymous session. No error is returned on purpose:
// distinguishing "no cookie" from "bad cookie" would leak validity to the
// caller.
func (m *Manager) Load(r *http.Request) *Session {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return &Session{}
	}

	values := make(map[string]string)
	if err := m.codec.Decode(m.cookieName, cookie.Value, &values); err != nil {
		return &Session{}
	}

	return &Session{UserID: values[userIDKey]}
}

// Save seals sess into a Set-Cookie header on w. The cookie is HttpOnly
// always, Secure in production, and session-scoped (no Max-Age): lifetime
// ends with the browser session or an explicit logout, never by expiry.
func (m *Manager) Save(w http.ResponseWriter, sess *Session) error {
	values := map[string]string{userIDKey: sess.UserID}
	encoded, err := m.codec.Encode(m.cookieName, values)
	if err != nil {
		return fmt.Errorf("error encoding session cookie: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Clear instructs the client to drop the session cookie. It succeeds
// unconditionally, whether or not a session existed.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// CookieName returns the cookie identifier used for sessions.
func (m *Manager) CookieName() string {
	return m.cookieName
}
