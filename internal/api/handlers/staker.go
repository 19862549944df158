package handlers

import (
	"net/http"

	"github.com/relicvault/staking-ledger-service/internal/types"
)

// GetStakerAssets @Summary Get staker assets
// @Description Retrieves the asset records for a given staker, newest stake first, with the lifecycle state derived at the current tick
// @Produce json
// @Param staker_address query string true "Staker address"
// @Param state query string false "Filter by asset state" Enums(staked, unbonding, withdrawable, settlement_pending, claimable)
// @Param pagination_key query string false "Pagination key to fetch the next page of assets"
// @Success 200 {object} PublicResponse[[]services.StakerAssetPublic]{array} "List of assets and pagination token"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Router /v1/staker/assets [get]
func (h *Handler) GetStakerAssets(request *http.Request) (*Result, *types.Error) {
	stakerAddress, err := parseAddressQuery(request, "staker_address")
	if err != nil {
		return nil, err
	}

	stateFilter := request.URL.Query().Get("state")
	paginationKey := parsePaginationQuery(request)

	assets, newPaginationKey, err := h.services.GetStakerAssets(
		request.Context(), stakerAddress, stateFilter, paginationKey,
	)
	if err != nil {
		return nil, err
	}

	return NewResultWithPagination(assets, newPaginationKey), nil
}

// GetStakerPendingAssets @Summary Get staker pending assets
// @Description Retrieves the ids the staker has unstaked but not yet claimed rewards for, with per-asset withdraw and claim eligibility at the current tick
// @Produce json
// @Param staker_address query string true "Staker address"
// @Success 200 {object} PublicResponse[services.StakerPendingAssetsPublic] "Pending assets with eligibility"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Router /v1/staker/pending [get]
func (h *Handler) GetStakerPendingAssets(request *http.Request) (*Result, *types.Error) {
	stakerAddress, err := parseAddressQuery(request, "staker_address")
	if err != nil {
		return nil, err
	}

	pending, err := h.services.GetStakerPendingAssets(request.Context(), stakerAddress)
	if err != nil {
		return nil, err
	}

	return NewResult(pending), nil
}

// GetStakerStats @Summary Get staker stats
// @Description Retrieves the per staker counters. A staker the ledger has never seen gets zeroed counters.
// @Produce json
// @Param staker_address query string true "Staker address"
// @Success 200 {object} PublicResponse[services.StakerStatsPublic] "Staker stats"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Router /v1/staker/stats [get]
func (h *Handler) GetStakerStats(request *http.Request) (*Result, *types.Error) {
	stakerAddress, err := parseAddressQuery(request, "staker_address")
	if err != nil {
		return nil, err
	}

	stats, err := h.services.GetStakerStats(request.Context(), stakerAddress)
	if err != nil {
		return nil, err
	}

	return NewResult(stats), nil
}
