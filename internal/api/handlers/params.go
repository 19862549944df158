package handlers

import (
	"net/http"

	"github.com/relicvault/staking-ledger-service/internal/types"
)

// GetLedgerParams godoc
// @Summary Get ledger parameters
// @Description Retrieves the ledger parameters, including the current tick, the cooldown windows and the reward rate in force.
// @Produce json
// @Success 200 {object} PublicResponse[services.ParamsPublic] "Ledger parameters"
// @Router /v1/params [get]
func (h *Handler) GetLedgerParams(request *http.Request) (*Result, *types.Error) {
	params := h.services.GetLedgerParams(request.Context())
	return NewResult(params), nil
}
