package middlewares

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/relicvault/staking-ledger-service/internal/observability/tracing"
)

// LoggingMiddleware attaches a request-scoped logger carrying the path and
// trace id to the context and logs one completion line per request with the
// collected span timings.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Swagger assets are noisy and carry no tracing context
		if strings.HasPrefix(r.URL.Path, "/swagger/") {
			next.ServeHTTP(w, r)
			return
		}

		startTime := time.Now()
		logger := log.With().Str("path", r.URL.Path).Logger()
		if traceId := r.Context().Value(tracing.TraceIdKey); traceId != nil {
			logger = logger.With().Interface("traceId", traceId).Logger()
		}

		logger.Debug().Msg("request received")
		r = r.WithContext(logger.WithContext(r.Context()))

		next.ServeHTTP(w, r)

		logEvent := logger.Info().Int64("requestDuration", time.Since(startTime).Milliseconds())
		if tracingInfo := r.Context().Value(tracing.TracingInfoKey); tracingInfo != nil {
			logEvent = logEvent.Interface("tracingInfo", tracingInfo)
		}
		logEvent.Msg("request completed")
	})
}
