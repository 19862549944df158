package middlewares

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/unrolled/secure"
)

// SecurityHeadersMiddleware sets the standard hardening headers. The CSP is
// strict self-only apart from inline styles, which the swagger UI needs.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	sec := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ContentSecurityPolicy: `
			default-src 'self';
			script-src 'self' 'unsafe-inline';
			style-src 'self' 'unsafe-inline';
			img-src 'self' data:;
			object-src 'none';
			frame-ancestors 'self';
			form-action 'self';
			block-all-mixed-content;
			base-uri 'self';
		`,
		ReferrerPolicy: "strict-origin-when-cross-origin",
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := sec.Process(w, r); err != nil {
				log.Ctx(r.Context()).Error().Err(err).Msg("failed to apply security headers")
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
