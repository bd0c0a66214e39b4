package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chi_middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/nadeuri-dev/nadeuri/shared/logger"
)

// RequestLogger logs one structured line per request after it is served.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chi_middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		// Handlers that only call Write never set the status explicitly
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		fields := []any{
			slog.Int("status", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("ip", r.RemoteAddr),
			slog.Duration("latency", time.Since(start)),
			slog.Int("bytes", ww.BytesWritten()),
		}
		// Present when chi's RequestID middleware runs first
		if rid := chi_middleware.GetReqID(r.Context()); rid != "" {
			fields = append(fields, slog.String("request_id", rid))
		}

		if status >= http.StatusInternalServerError {
			logger.Log.Error("request failed", fields...)
		} else {
			logger.Log.Info("request processed", fields...)
		}
	})
}
