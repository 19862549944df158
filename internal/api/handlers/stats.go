package handlers

import (
	"net/http"

	"github.com/relicvault/staking-ledger-service/internal/types"
)

// GetOverallStats gets overall stats for the staking ledger
// @Summary Get Overall Stats
// @Description Fetches the service wide counters, including active and unbonding asset counts, rewards paid and the total number of stakers.
// @Produce json
// @Success 200 {object} PublicResponse[services.OverallStatsPublic] "Overall ledger stats"
// @Router /v1/stats [get]
func (h *Handler) GetOverallStats(request *http.Request) (*Result, *types.Error) {
	stats, err := h.services.GetOverallStats(request.Context())
	if err != nil {
		return nil, err
	}

	return NewResult(stats), nil
}

// GetTopStakerStats gets top stakers by active asset count
// @Summary Get Top Staker Stats by Active Assets
// @Description Fetches details of top stakers by their active staked asset count in descending order.
// @Produce json
// @Param  pagination_key query string false "Pagination key to fetch the next page of top stakers"
// @Success 200 {object} PublicResponse[[]services.StakerStatsPublic]{array} "List of top stakers by active assets"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Router /v1/stats/staker [get]
func (h *Handler) GetTopStakerStats(request *http.Request) (*Result, *types.Error) {
	paginationKey := parsePaginationQuery(request)
	topStakerStats, paginationToken, err := h.services.GetTopStakers(request.Context(), paginationKey)
	if err != nil {
		return nil, err
	}

	return NewResultWithPagination(topStakerStats, paginationToken), nil
}
