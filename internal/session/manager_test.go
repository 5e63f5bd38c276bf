// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(testSecret, "session", false)
	require.NoError(t, err)
	return m
}

// requestWithCookie copies the Set-Cookie headers of rec onto a fresh request.
func requestWithCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestNewManager_InvalidSecretHex(t *testing.T) {
	m, err := NewManager("zz-not-hex", "session", false)

	require.ErrorIs(t, err, ErrInvalidSecret)
	assert.Nil(t, m)
}

func TestNewManager_InvalidSecretLength(t *testing.T) {
	m, err := NewManager("cafebabe", "session", false)

	require.ErrorIs(t, err, ErrInvalidSecret)
	assert.Nil(t, m)
}

func TestNewManager_EmptySecretGeneratesTransientKey(t *testing.T) {
	m, err := NewManager("", "session", false)

	require.NoError(t, err)
	require.NotNil(t, m)

	// a transient-key manager must still round-trip its own cookies
	rec := httptest.NewRecorder()
	require.NoError(t, m.Save(rec, &Session{UserID: "id-1"}))
	assert.Equal(t, "id-1", m.Load(requestWithCookie(t, rec)).UserID)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	m := newTestManager(t)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Save(rec, &Session{UserID: "id-42"}))

	sess := m.Load(requestWithCookie(t, rec))

	assert.Equal(t, "id-42", sess.UserID)
	assert.True(t, sess.IsAuthenticated())
}

func TestSave_CookieAttributes(t *testing.T) {
	m := newTestManager(t)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Save(rec, &Session{UserID: "id-1"}))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	c := cookies[0]
	assert.Equal(t, "session", c.Name)
	assert.True(t, c.HttpOnly)
	assert.False(t, c.Secure, "secure flag is off outside production")
	assert.Equal(t, "/", c.Path)
	assert.Zero(t, c.MaxAge, "session cookie carries no expiry")
	assert.NotContains(t, c.Value, "id-1", "user id must not appear in the clear")
}

func TestSave_SecureFlagInProduction(t *testing.T) {
	m, err := NewManager(testSecret, "session", true)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Save(rec, &Session{UserID: "id-1"}))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
}

func TestLoad_NoCookie(t *testing.T) {
	m := newTestManager(t)

	sess := m.Load(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, sess.UserID)
	assert.False(t, sess.IsAuthenticated())
}

func TestLoad_TamperedCookie(t *testing.T) {
	m := newTestManager(t)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Save(rec, &Session{UserID: "id-42"}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := rec.Result().Cookies()[0]
	c.Value = "A" + c.Value[1:] // flip the first character
	req.AddCookie(c)

	sess := m.Load(req)

	assert.Empty(t, sess.UserID, "a tampered cookie behaves like no cookie")
}

func TestLoad_CookieFromDifferentKey(t *testing.T) {
	m := newTestManager(t)
	other, err := NewManager("1f1e1d1c1b1a191817161514131211100f0e0d0c0b0a09080706050403020100", "session", false)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, other.Save(rec, &Session{UserID: "id-42"}))

	sess := m.Load(requestWithCookie(t, rec))

	assert.Empty(t, sess.UserID, "a cookie sealed under another key behaves like no cookie")
}

func TestClear_ExpiresCookie(t *testing.T) {
	m := newTestManager(t)

	rec := httptest.NewRecorder()
	m.Clear(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	c := cookies[0]
	assert.Empty(t, c.Value)
	assert.Negative(t, c.MaxAge)
	assert.True(t, c.HttpOnly)
}

func TestCookieName(t *testing.T) {
	m, err := NewManager(testSecret, "registry_session", false)
	require.NoError(t, err)

	assert.Equal(t, "registry_session", m.CookieName())
}
