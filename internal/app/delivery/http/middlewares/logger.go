package middlewares

import (
	"context"
	"intake-service/internal/pkg/constvars"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rec *responseRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}

func (m *Middlewares) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		w.Header().Set(constvars.HeaderXRequestID, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY)

		m.Log.Info("request started",
			zap.Any(constvars.LoggingRequestIDKey, requestID),
			zap.String("method", r.Method),
			zap.String("endpoint", r.URL.Path),
			zap.String("remote_addr", r.RemoteAddr),
		)

		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r)

		m.Log.Info("request completed",
			zap.Any(constvars.LoggingRequestIDKey, requestID),
			zap.String("method", r.Method),
			zap.String("endpoint", r.URL.Path),
			zap.Int("status_code", rec.statusCode),
			zap.Duration("duration", time.Since(start)),
			zap.Bool("success", rec.statusCode < 400),
		)
	})
}
