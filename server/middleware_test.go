package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseCarriesRequestID(t *testing.T) {
	router := newTestRouter(translationDocument())

	request := httptest.NewRequest(http.MethodGet, "/models/audio-translation/settings", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	if recorder.Header().Get("X-Request-ID") == "" {
		t.Error("expected a generated X-Request-ID header")
	}

	request = httptest.NewRequest(http.MethodGet, "/models/audio-translation/settings", nil)
	request.Header.Set("X-Request-ID", "client-supplied-id")
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, "client-supplied-id", recorder.Header().Get("X-Request-ID"))
}

func TestRecovererWritesServerError(t *testing.T) {
	handler := recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
