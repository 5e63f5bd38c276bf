package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_RecordsStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusTeapot)
	n, err := rw.Write([]byte("hello"))

	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusTeapot, rw.status)
	assert.Equal(t, 5, rw.size)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestResponseWriter_ImplicitOKOnWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	_, err := rw.Write([]byte("body"))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rw.status)
}

func TestResponseWriter_SecondWriteHeaderIgnored(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusNotFound, rw.status)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResponseWriter_SizeAccumulatesAcrossWrites(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	_, _ = rw.Write([]byte("abc"))
	_, _ = rw.Write([]byte("defgh"))

	assert.Equal(t, 8, rw.size)
	assert.Equal(t, "abcdefgh", rec.Body.String())
}
