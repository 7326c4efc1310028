package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/emphasis-trainer/internal/api/shared"
	"github.com/phrazzld/emphasis-trainer/internal/platform/logger"
)

// Trace returns middleware that assigns every request a trace ID and a
// request-scoped logger carrying it. Install it before any handler that
// logs.
func Trace(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)
			ctx = logger.WithRequestID(ctx, traceID)
			ctx = logger.WithLogger(ctx, base)

			logger.FromContext(ctx).Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
