package server

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/lep/jassbot/internal/log"
	"github.com/lep/jassbot/internal/tracing"
)

// Chain wraps next with request ids, tracing and access logging, outermost
// first.
func Chain(next http.Handler, tracer trace.Tracer) http.Handler {
	return tracing.RequestID(tracing.Middleware(tracer)(AccessLog(next)))
}

// AccessLog logs one line per request.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec, ok := w.(*tracing.StatusRecorder)
		if !ok {
			rec = &tracing.StatusRecorder{ResponseWriter: w}
		}
		next.ServeHTTP(rec, r)

		status := rec.Status
		if status == 0 {
			status = http.StatusOK
		}
		fields := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"duration", time.Since(start),
			"request_id", tracing.RequestIDFromContext(r.Context()),
		}
		if status >= http.StatusInternalServerError {
			log.Error(log.CatHTTP, "Request failed", fields...)
			return
		}
		log.Debug(log.CatHTTP, "Request", fields...)
	})
}
