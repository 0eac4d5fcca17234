package middleware

import (
	"log/slog"
	"net/http"
	"time"

	uuid "github.com/satori/go.uuid"
)

const pkg = "middleware/"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Logger tags every request with a generated request id and logs it on
// completion with status and duration.
func Logger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			op := pkg + "Logger"

			requestID := uuid.NewV4().String()

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", requestID),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			start := time.Now()

			next.ServeHTTP(rec, r)

			log.Info("request completed",
				slog.Int("status", rec.status),
				slog.Duration("duration", time.Since(start)))
		})
	}
}
