package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ethereum/go-ethereum/common"

	"github.com/relicvault/staking-ledger-service/internal/types"
)

type StakeAssetsRequestPayload struct {
	StakerAddress string   `json:"staker_address"`
	AssetIDs      []uint64 `json:"asset_ids"`
}

func parseStakeAssetsRequestPayload(request *http.Request) (*StakeAssetsRequestPayload, *types.Error) {
	payload := &StakeAssetsRequestPayload{}
	err := json.NewDecoder(request.Body).Decode(payload)
	if err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}
	if !common.IsHexAddress(payload.StakerAddress) {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid staker address",
		)
	}
	// Batch rules such as size and duplicates are enforced by the ledger
	payload.StakerAddress = common.HexToAddress(payload.StakerAddress).Hex()

	return payload, nil
}

// StakeAssets godoc
// @Summary Stake assets
// @Description Moves the batch of assets into escrow custody and starts reward accrual for each of them. The whole batch commits or none of it does.
// @Accept json
// @Produce json
// @Param payload body StakeAssetsRequestPayload true "Stake Request Payload"
// @Success 200 {object} PublicResponse[services.StakeReceiptPublic] "Stake receipt"
// @Failure 400 {object} types.Error "Invalid request payload"
// @Failure 409 {object} types.Error "Staking paused or an asset is already staked"
// @Router /v1/stake [post]
func (h *Handler) StakeAssets(request *http.Request) (*Result, *types.Error) {
	payload, err := parseStakeAssetsRequestPayload(request)
	if err != nil {
		return nil, err
	}
	receipt, stakeErr := h.services.StakeAssets(
		request.Context(), payload.StakerAddress, payload.AssetIDs,
	)
	if stakeErr != nil {
		return nil, stakeErr
	}

	return NewResult(receipt), nil
}
