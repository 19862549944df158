package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ethereum/go-ethereum/common"

	"github.com/relicvault/staking-ledger-service/internal/types"
)

type ClaimRewardsRequestPayload struct {
	StakerAddress string `json:"staker_address"`
}

func parseClaimRewardsRequestPayload(request *http.Request) (*ClaimRewardsRequestPayload, *types.Error) {
	payload := &ClaimRewardsRequestPayload{}
	err := json.NewDecoder(request.Body).Decode(payload)
	if err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}
	if !common.IsHexAddress(payload.StakerAddress) {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid staker address",
		)
	}
	payload.StakerAddress = common.HexToAddress(payload.StakerAddress).Hex()

	return payload, nil
}

// ClaimRewards godoc
// @Summary Claim rewards
// @Description Pays out the accrued rewards for every pending asset whose settlement window has elapsed and closes their ledger records. Fails if any pending asset is not settled yet.
// @Accept json
// @Produce json
// @Param payload body ClaimRewardsRequestPayload true "Claim Request Payload"
// @Success 200 {object} PublicResponse[services.ClaimReceiptPublic] "Claim receipt"
// @Failure 400 {object} types.Error "Invalid request payload"
// @Failure 409 {object} types.Error "No claimable assets or a settlement window still open"
// @Failure 502 {object} types.Error "Reward ledger rejected the disbursement"
// @Router /v1/claim-rewards [post]
func (h *Handler) ClaimRewards(request *http.Request) (*Result, *types.Error) {
	payload, err := parseClaimRewardsRequestPayload(request)
	if err != nil {
		return nil, err
	}
	receipt, claimErr := h.services.ClaimRewards(request.Context(), payload.StakerAddress)
	if claimErr != nil {
		return nil, claimErr
	}

	return NewResult(receipt), nil
}
