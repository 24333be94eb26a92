package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/zenlead/studio/core/logger"
	"github.com/zenlead/studio/core/rescue"
)

// statusRecorder captures the status code written by a handler so the
// request logger can report it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(recorder, r)

		logger.Info("%s %s %d %s request_id=%s", r.Method, r.URL.Path, recorder.status, time.Since(start), requestID)
	})
}

// recoverer turns a handler panic into a 500 response. The cleanup
// runs only when a panic is being recovered.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer rescue.Recover(func() {
			writeJSON(w, http.StatusInternalServerError, "Internal server error", nil)
		})

		next.ServeHTTP(w, r)
	})
}
