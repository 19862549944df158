package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ethereum/go-ethereum/common"

	"github.com/relicvault/staking-ledger-service/internal/types"
)

type UnstakeAssetsRequestPayload struct {
	StakerAddress string   `json:"staker_address"`
	AssetIDs      []uint64 `json:"asset_ids"`
}

func parseUnstakeAssetsRequestPayload(request *http.Request) (*UnstakeAssetsRequestPayload, *types.Error) {
	payload := &UnstakeAssetsRequestPayload{}
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

// UnstakeAssets godoc
// @Summary Unstake assets
// @Description Stops reward accrual for the batch and starts its unbonding window. The assets stay in escrow until they are withdrawn.
// @Accept json
// @Produce json
// @Param payload body UnstakeAssetsRequestPayload true "Unstake Request Payload"
// @Success 200 {object} PublicResponse[services.UnstakeReceiptPublic] "Unstake receipt"
// @Failure 400 {object} types.Error "Invalid request payload"
// @Failure 403 {object} types.Error "An asset belongs to another staker"
// @Failure 404 {object} types.Error "An asset is not staked"
// @Failure 409 {object} types.Error "An asset was already unstaked"
// @Router /v1/unstake [post]
func (h *Handler) UnstakeAssets(request *http.Request) (*Result, *types.Error) {
	payload, err := parseUnstakeAssetsRequestPayload(request)
	if err != nil {
		return nil, err
	}
	receipt, unstakeErr := h.services.UnstakeAssets(
		request.Context(), payload.StakerAddress, payload.AssetIDs,
	)
	if unstakeErr != nil {
		return nil, unstakeErr
	}

	return NewResult(receipt), nil
}
