package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ethereum/go-ethereum/common"

	"github.com/relicvault/staking-ledger-service/internal/types"
)

type UpdateRewardRateRequestPayload struct {
	CallerAddress string `json:"caller_address"`
	NewRate       uint64 `json:"new_rate"`
}

type SetPausedRequestPayload struct {
	CallerAddress string `json:"caller_address"`
	Paused        *bool  `json:"paused"`
}

func parseUpdateRewardRateRequestPayload(request *http.Request) (*UpdateRewardRateRequestPayload, *types.Error) {
	payload := &UpdateRewardRateRequestPayload{}
	err := json.NewDecoder(request.Body).Decode(payload)
	if err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}
	if !common.IsHexAddress(payload.CallerAddress) {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid caller address",
		)
	}
	// Rate validity is the ledger's call, the admin check must come first
	payload.CallerAddress = common.HexToAddress(payload.CallerAddress).Hex()

	return payload, nil
}

func parseSetPausedRequestPayload(request *http.Request) (*SetPausedRequestPayload, *types.Error) {
	payload := &SetPausedRequestPayload{}
	err := json.NewDecoder(request.Body).Decode(payload)
	if err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}
	if !common.IsHexAddress(payload.CallerAddress) {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid caller address",
		)
	}
	if payload.Paused == nil {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "paused is required",
		)
	}
	payload.CallerAddress = common.HexToAddress(payload.CallerAddress).Hex()

	return payload, nil
}

// UpdateRewardRate godoc
// @Summary Update the reward rate
// @Description Sets a new per-tick reward rate. The new rate applies to every claim from this point on, including assets that were unstaked under the previous rate. Admin only.
// @Accept json
// @Produce json
// @Param payload body UpdateRewardRateRequestPayload true "Reward Rate Request Payload"
// @Success 200 {object} PublicResponse[services.RewardRateUpdatePublic] "Old and new rate"
// @Failure 400 {object} types.Error "Invalid request payload or rate"
// @Failure 403 {object} types.Error "Caller is not the admin"
// @Router /v1/admin/reward-rate [post]
func (h *Handler) UpdateRewardRate(request *http.Request) (*Result, *types.Error) {
	payload, err := parseUpdateRewardRateRequestPayload(request)
	if err != nil {
		return nil, err
	}
	update, updateErr := h.services.UpdateRewardRate(
		request.Context(), payload.CallerAddress, payload.NewRate,
	)
	if updateErr != nil {
		return nil, updateErr
	}

	return NewResult(update), nil
}

// SetPaused godoc
// @Summary Pause or resume staking intake
// @Description Toggles the pause flag. While paused new stakes are rejected, every other operation keeps working. Admin only.
// @Accept json
// @Produce json
// @Param payload body SetPausedRequestPayload true "Pause Request Payload"
// @Success 200 {object} PublicResponse[services.PausedPublic] "Resulting pause flag"
// @Failure 400 {object} types.Error "Invalid request payload"
// @Failure 403 {object} types.Error "Caller is not the admin"
// @Router /v1/admin/pause [post]
func (h *Handler) SetPaused(request *http.Request) (*Result, *types.Error) {
	payload, err := parseSetPausedRequestPayload(request)
	if err != nil {
		return nil, err
	}
	paused, pauseErr := h.services.SetPaused(
		request.Context(), payload.CallerAddress, *payload.Paused,
	)
	if pauseErr != nil {
		return nil, pauseErr
	}

	return NewResult(paused), nil
}
