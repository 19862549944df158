package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ethereum/go-ethereum/common"

	"github.com/relicvault/staking-ledger-service/internal/types"
)

type WithdrawAssetsRequestPayload struct {
	StakerAddress string `json:"staker_address"`
}

func parseWithdrawAssetsRequestPayload(request *http.Request) (*WithdrawAssetsRequestPayload, *types.Error) {
	payload := &WithdrawAssetsRequestPayload{}
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

// WithdrawAssets godoc
// @Summary Withdraw unbonded assets
// @Description Returns custody of every pending asset whose unbonding window has elapsed and starts their settlement window. Fails if any pending asset is still unbonding.
// @Accept json
// @Produce json
// @Param payload body WithdrawAssetsRequestPayload true "Withdraw Request Payload"
// @Success 200 {object} PublicResponse[services.WithdrawReceiptPublic] "Withdraw receipt"
// @Failure 400 {object} types.Error "Invalid request payload"
// @Failure 409 {object} types.Error "No pending assets or an unbonding window still open"
// @Router /v1/withdraw [post]
func (h *Handler) WithdrawAssets(request *http.Request) (*Result, *types.Error) {
	payload, err := parseWithdrawAssetsRequestPayload(request)
	if err != nil {
		return nil, err
	}
	receipt, withdrawErr := h.services.WithdrawAssets(request.Context(), payload.StakerAddress)
	if withdrawErr != nil {
		return nil, withdrawErr
	}

	return NewResult(receipt), nil
}
