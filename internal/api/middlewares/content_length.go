package middlewares

import (
	"net/http"

	"github.com/relicvault/staking-ledger-service/internal/config"
)

// ContentLengthMiddleware caps write request bodies. The largest legitimate
// payload is a max-size stake batch, anything bigger is rejected before the
// handler reads it.
func ContentLengthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost && r.ContentLength > cfg.Server.MaxContentLength {
				http.Error(w, "Request Entity Too Large", http.StatusRequestEntityTooLarge)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
