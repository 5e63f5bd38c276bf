package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-role-registry/internal/logger"
)

// ---- Helpers ----

func executeWithTraceID(h *Handler, incomingTraceID string) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.withTraceID(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if incomingTraceID != "" {
		req.Header.Set(traceIDHeader, incomingTraceID)
	}

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func newTraceTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

// ---- Response header ----

func TestWithTraceID_ReusesIncomingHeader(t *testing.T) {
	h := newTraceTestHandler()

	rr := executeWithTraceID(h, "my-custom-trace-id")

	assert.Equal(t, "my-custom-trace-id", rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_GeneratesUUIDWhenAbsent(t *testing.T) {
	h := newTraceTestHandler()

	rr := executeWithTraceID(h, "")

	id := rr.Header().Get(traceIDHeader)
	require.NotEmpty(t, id, "X-Trace-ID header must be set in response")
	_, err := uuid.Parse(id)
	assert.NoError(t, err, "generated trace ID should be a valid UUID, got: %s", id)
}

func TestWithTraceID_GeneratesUniqueUUIDs(t *testing.T) {
	h := newTraceTestHandler()
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		rr := executeWithTraceID(h, "")
		id := rr.Header().Get(traceIDHeader)
		require.NotEmpty(t, id)

		_, duplicate := seen[id]
		assert.False(t, duplicate, "duplicate trace ID generated: %s", id)
		seen[id] = struct{}{}
	}
}

// ---- Context logger ----

func TestWithTraceID_LoggerInContext(t *testing.T) {
	h := newTraceTestHandler()

	var ctxLogger *logger.Logger
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger = logger.FromRequest(r)
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.withTraceID(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	require.NotNil(t, ctxLogger)
}

// ---- Next handler always runs ----

func TestWithTraceID_AlwaysCallsNext(t *testing.T) {
	h := newTraceTestHandler()
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusTeapot)
	})

	middleware := h.withTraceID(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusTeapot, rr.Code)
}
