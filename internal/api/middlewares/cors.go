package middlewares

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/relicvault/staking-ledger-service/internal/config"
)

const corsMaxAgeSeconds = 300

func CorsMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		MaxAge:         corsMaxAgeSeconds,
	})
	return c.Handler
}
