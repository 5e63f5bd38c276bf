package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-role-registry/internal/logger"
	"github.com/MKhiriev/go-role-registry/internal/service"
	"github.com/MKhiriev/go-role-registry/internal/store"
	"github.com/MKhiriev/go-role-registry/models"
)

// ---- Helpers ----

// newTestRouter builds the full router over mock services.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	h := &Handler{
		logger:   logger.Nop(),
		sessions: newTestSessions(t),
		services: &service.Services{
			AuthService:       &mockAuthService{},
			VisibilityService: &mockVisibilityService{},
		},
	}
	return h.Init()
}

// seedRegistry writes a three-user seed file with real bcrypt hashes and
// returns a registry loaded from it.
func seedRegistry(t *testing.T) store.UserRegistry {
	t.Helper()

	hash := func(password string) string {
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		require.NoError(t, err)
		return string(h)
	}

	records := []map[string]string{
		{"id": "id-1", "username": "admin", "password_hash": hash("adminpass"), "name": "Ana Admin", "email": "ana@example.com", "role": "admin"},
		{"id": "id-2", "username": "super1", "password_hash": hash("superpass"), "name": "Saul Supervisor", "email": "saul@example.com", "role": "supervisor"},
		{"id": "id-3", "username": "usuario1", "password_hash": hash("userpass"), "name": "Uma Usuario", "email": "uma@example.com", "role": "usuario"},
	}
	body, err := json.Marshal(records)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, body, 0o600))

	registry, err := store.NewFileUserRegistry(path, logger.Nop())
	require.NoError(t, err)
	return registry
}

// newAPIClient starts a server over the full stack and returns a client with
// a cookie jar, the way a browser would hold the session.
func newAPIClient(t *testing.T) *resty.Client {
	t.Helper()

	registry := seedRegistry(t)
	storages := &store.Storages{UserRegistry: registry}
	h := NewHandler(service.NewServices(storages, logger.Nop()), newTestSessions(t), logger.Nop())

	server := httptest.NewServer(h.Init())
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return resty.New().SetBaseURL(server.URL).SetCookieJar(jar)
}

func loginAs(t *testing.T, client *resty.Client, username, password string) *resty.Response {
	t.Helper()
	resp, err := client.R().
		SetBody(map[string]string{"username": username, "password": password}).
		Post("/api/login")
	require.NoError(t, err)
	return resp
}

// ---- Routing ----

// TestInit_UnknownRoute verifies that an unregistered path is a plain 404.
func TestInit_UnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// TestInit_WrongMethodHidesRoute verifies that calling a registered route
// with an unsupported method yields 404 rather than 405.
func TestInit_WrongMethodHidesRoute(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/login"},
		{http.MethodDelete, "/api/logout"},
		{http.MethodPost, "/api/me"},
		{http.MethodPut, "/api/users"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

// ---- End-to-end flows over the full stack ----

// TestAPI_LoginMeUsersLogoutFlow walks the whole session lifecycle: login,
// read own record, list users, logout, and get rejected afterwards.
func TestAPI_LoginMeUsersLogoutFlow(t *testing.T) {
	client := newAPIClient(t)

	// login
	loginResp := loginAs(t, client, "admin", "adminpass")
	require.Equal(t, http.StatusOK, loginResp.StatusCode())

	var login models.LoginResponse
	require.NoError(t, json.Unmarshal(loginResp.Body(), &login))
	assert.Equal(t, "admin", login.Role)

	// me
	meResp, err := client.R().Get("/api/me")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, meResp.StatusCode())

	var me map[string]any
	require.NoError(t, json.Unmarshal(meResp.Body(), &me))
	assert.Equal(t, "admin", me["username"])
	assert.NotContains(t, me, "password_hash")

	// users: admin sees the whole registry
	usersResp, err := client.R().Get("/api/users")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, usersResp.StatusCode())

	var users []map[string]any
	require.NoError(t, json.Unmarshal(usersResp.Body(), &users))
	assert.Len(t, users, 3)
	for _, user := range users {
		assert.NotContains(t, user, "password_hash")
	}

	// logout
	logoutResp, err := client.R().Post("/api/logout")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, logoutResp.StatusCode())

	// the session is gone
	afterResp, err := client.R().Get("/api/me")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, afterResp.StatusCode())
}

// TestAPI_VisibilityPerRole verifies the per-role /api/users view over the
// real service stack.
func TestAPI_VisibilityPerRole(t *testing.T) {
	tests := []struct {
		username string
		password string
		want     []string
	}{
		{"admin", "adminpass", []string{"admin", "super1", "usuario1"}},
		{"super1", "superpass", []string{"super1", "usuario1"}},
		{"usuario1", "userpass", []string{"usuario1"}},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			client := newAPIClient(t)

			loginResp := loginAs(t, client, tt.username, tt.password)
			require.Equal(t, http.StatusOK, loginResp.StatusCode())

			usersResp, err := client.R().Get("/api/users")
			require.NoError(t, err)
			require.Equal(t, http.StatusOK, usersResp.StatusCode())

			var users []map[string]any
			require.NoError(t, json.Unmarshal(usersResp.Body(), &users))

			got := make([]string, 0, len(users))
			for _, user := range users {
				got = append(got, fmt.Sprint(user["username"]))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestAPI_IndistinguishableLoginFailures verifies at the wire level that an
// unknown username and a wrong password produce byte-identical responses.
func TestAPI_IndistinguishableLoginFailures(t *testing.T) {
	client := newAPIClient(t)

	unknownUser := loginAs(t, client, "ghost", "whatever")
	wrongPassword := loginAs(t, client, "admin", "wrongpass")

	assert.Equal(t, http.StatusUnauthorized, unknownUser.StatusCode())
	assert.Equal(t, unknownUser.StatusCode(), wrongPassword.StatusCode())
	assert.Equal(t, unknownUser.Body(), wrongPassword.Body())
}

// TestAPI_ProtectedRoutesRequireSession verifies that /api/me and /api/users
// reject anonymous callers with the same body.
func TestAPI_ProtectedRoutesRequireSession(t *testing.T) {
	client := newAPIClient(t)

	meResp, err := client.R().Get("/api/me")
	require.NoError(t, err)
	usersResp, err := client.R().Get("/api/users")
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, meResp.StatusCode())
	assert.Equal(t, http.StatusUnauthorized, usersResp.StatusCode())
	assert.Equal(t, meResp.Body(), usersResp.Body())
}
