package api

import (
	"github.com/go-chi/chi"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/relicvault/staking-ledger-service/docs"
)

func (a *Server) SetupRoutes(r *chi.Mux) {
	handlers := a.handlers
	r.Get("/healthcheck", registerHandler(handlers.HealthCheck))

	r.Post("/v1/stake", registerHandler(handlers.StakeAssets))
	r.Post("/v1/unstake", registerHandler(handlers.UnstakeAssets))
	r.Post("/v1/withdraw", registerHandler(handlers.WithdrawAssets))
	r.Post("/v1/claim-rewards", registerHandler(handlers.ClaimRewards))

	r.Post("/v1/admin/reward-rate", registerHandler(handlers.UpdateRewardRate))
	r.Post("/v1/admin/pause", registerHandler(handlers.SetPaused))

	r.Get("/v1/params", registerHandler(handlers.GetLedgerParams))
	r.Get("/v1/staker/assets", registerHandler(handlers.GetStakerAssets))
	r.Get("/v1/staker/pending", registerHandler(handlers.GetStakerPendingAssets))
	r.Get("/v1/staker/stats", registerHandler(handlers.GetStakerStats))
	r.Get("/v1/stats", registerHandler(handlers.GetOverallStats))
	r.Get("/v1/stats/staker", registerHandler(handlers.GetTopStakerStats))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
}
