package services

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/relicvault/staking-ledger-service/internal/db"
	"github.com/relicvault/staking-ledger-service/internal/db/model"
	"github.com/relicvault/staking-ledger-service/internal/types"
	"github.com/relicvault/staking-ledger-service/internal/utils"
)

type StakerAssetPublic struct {
	AssetID              uint64 `json:"asset_id"`
	StakerAddress        string `json:"staker_address"`
	State                string `json:"state"`
	StakedAtTick         uint64 `json:"staked_at_tick"`
	UnstakedAtTick       uint64 `json:"unstaked_at_tick,omitempty"`
	UnbondingEndsAtTick  uint64 `json:"unbonding_ends_at_tick,omitempty"`
	SettlementEndsAtTick uint64 `json:"settlement_ends_at_tick,omitempty"`
	AccruedTicks         uint64 `json:"accrued_ticks"`
	// Reward the asset would pay out at the current rate. Accrual stops at
	// unstake, so for assets still staked this is zero until they unstake.
	EstimatedReward uint64 `json:"estimated_reward"`
}

// PendingAssetPublic is one entry of a staker's pending set with its
// eligibility at the current tick.
type PendingAssetPublic struct {
	AssetID      uint64 `json:"asset_id"`
	State        string `json:"state"`
	Withdrawable bool   `json:"withdrawable"`
	Claimable    bool   `json:"claimable"`
}

type StakerPendingAssetsPublic struct {
	StakerAddress string               `json:"staker_address"`
	CurrentTick   uint64               `json:"current_tick"`
	Assets        []PendingAssetPublic `json:"assets"`
}

var allAssetStates = []string{
	types.Staked.ToString(),
	types.Unbonding.ToString(),
	types.Withdrawable.ToString(),
	types.SettlementPending.ToString(),
	types.Claimable.ToString(),
}

func (s *Services) fromStakedAssetDocument(
	d model.StakedAssetDocument, currentTick, ratePerTick uint64,
) StakerAssetPublic {
	state := types.DeriveAssetState(
		d.IsUnstaked, d.IsWithdrawn, d.UnbondingEndsAtTick, d.SettlementEndsAtTick, currentTick,
	)
	accruedTicks := d.AccruedTicks()
	return StakerAssetPublic{
		AssetID:              d.AssetID,
		StakerAddress:        d.StakerAddress,
		State:                state.ToString(),
		StakedAtTick:         d.StakedAtTick,
		UnstakedAtTick:       d.UnstakedAtTick,
		UnbondingEndsAtTick:  d.UnbondingEndsAtTick,
		SettlementEndsAtTick: d.SettlementEndsAtTick,
		AccruedTicks:         accruedTicks,
		EstimatedReward:      accruedTicks * ratePerTick,
	}
}

// GetStakerAssets returns the staker's asset records newest first, with the
// lifecycle state derived at the current tick. An optional state filter
// narrows the page to assets in that state.
func (s *Services) GetStakerAssets(
	ctx context.Context, stakerAddress, stateFilter, pageToken string,
) ([]StakerAssetPublic, string, *types.Error) {
	if stateFilter != "" && !utils.Contains(allAssetStates, stateFilter) {
		log.Ctx(ctx).Warn().Str("state", stateFilter).Msg("invalid asset state filter")
		return nil, "", types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid asset state filter",
		)
	}

	resultMap, err := s.DbClient.FindStakedAssetsByStaker(ctx, stakerAddress, pageToken)
	if err != nil {
		if db.IsInvalidPaginationTokenError(err) {
			log.Ctx(ctx).Warn().Err(err).Msg("invalid pagination token when fetching staker assets")
			return nil, "", types.NewError(http.StatusBadRequest, types.BadRequest, err)
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to find staked assets by staker")
		return nil, "", types.NewInternalServiceError(err)
	}

	currentTick := s.Ledger.CurrentTick()
	ratePerTick := s.Ledger.RewardRatePerTick()
	assets := make([]StakerAssetPublic, 0, len(resultMap.Data))
	for _, d := range resultMap.Data {
		asset := s.fromStakedAssetDocument(d, currentTick, ratePerTick)
		if stateFilter != "" && asset.State != stateFilter {
			continue
		}
		assets = append(assets, asset)
	}
	return assets, resultMap.PaginationToken, nil
}

// GetStakerPendingAssets returns the ids the staker has unstaked but not yet
// claimed, each annotated with whether it can be withdrawn or claimed at the
// current tick. A staker with no pending set gets an empty list.
func (s *Services) GetStakerPendingAssets(
	ctx context.Context, stakerAddress string,
) (*StakerPendingAssetsPublic, *types.Error) {
	currentTick := s.Ledger.CurrentTick()
	pendingSet, err := s.DbClient.FindPendingSet(ctx, stakerAddress)
	if err != nil {
		if db.IsNotFoundError(err) {
			return &StakerPendingAssetsPublic{
				StakerAddress: stakerAddress,
				CurrentTick:   currentTick,
				Assets:        []PendingAssetPublic{},
			}, nil
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to find pending set for staker")
		return nil, types.NewInternalServiceError(err)
	}

	records, err := s.DbClient.FindStakedAssetsByIDs(ctx, pendingSet.AssetIDs)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to load records for pending set")
		return nil, types.NewInternalServiceError(err)
	}
	recordsByID := make(map[uint64]model.StakedAssetDocument, len(records))
	for _, record := range records {
		recordsByID[record.AssetID] = record
	}

	assets := make([]PendingAssetPublic, 0, len(pendingSet.AssetIDs))
	for _, assetID := range pendingSet.AssetIDs {
		record, found := recordsByID[assetID]
		if !found {
			// Claim deletes records and clears the pending set in one
			// transaction, so a dangling id means a corrupted set.
			log.Ctx(ctx).Error().Uint64("assetId", assetID).
				Msg("pending set references a missing asset record")
			continue
		}
		state := types.DeriveAssetState(
			record.IsUnstaked, record.IsWithdrawn,
			record.UnbondingEndsAtTick, record.SettlementEndsAtTick, currentTick,
		)
		assets = append(assets, PendingAssetPublic{
			AssetID:      assetID,
			State:        state.ToString(),
			Withdrawable: state == types.Withdrawable,
			Claimable:    state == types.Claimable,
		})
	}

	return &StakerPendingAssetsPublic{
		StakerAddress: pendingSet.StakerAddress,
		CurrentTick:   currentTick,
		Assets:        assets,
	}, nil
}
