package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/relicvault/staking-ledger-service/internal/observability/metrics"
	queueclient "github.com/relicvault/staking-ledger-service/internal/queue/client"
	"github.com/relicvault/staking-ledger-service/internal/types"
)

type UnstakeReceiptPublic struct {
	StakerAddress       string   `json:"staker_address"`
	AssetIDs            []uint64 `json:"asset_ids"`
	UnstakedAtTick      uint64   `json:"unstaked_at_tick"`
	UnbondingEndsAtTick uint64   `json:"unbonding_ends_at_tick"`
}

// UnstakeAssets stops duration accrual for the batch and starts its
// unbonding window, then emits the unstaked event.
func (s *Services) UnstakeAssets(
	ctx context.Context, stakerAddress string, assetIDs []uint64,
) (*UnstakeReceiptPublic, *types.Error) {
	receipt, err := s.Ledger.Unstake(ctx, stakerAddress, assetIDs)
	if err != nil {
		metrics.RecordLedgerOperation("unstake", metrics.Error)
		return nil, mapLedgerError(ctx, "unstake", err)
	}
	metrics.RecordLedgerOperation("unstake", metrics.Success)

	unstakedEvent := queueclient.NewAssetUnstakedEvent(
		receipt.StakerAddress, receipt.AssetIDs, receipt.UnstakedAtTick, receipt.UnbondingEndsAtTick,
	)
	if publishErr := s.Queues.PublishAssetUnstakedEvent(ctx, unstakedEvent); publishErr != nil {
		log.Ctx(ctx).Error().Err(publishErr).Msg("failed to publish asset unstaked event")
	}

	return &UnstakeReceiptPublic{
		StakerAddress:       receipt.StakerAddress,
		AssetIDs:            receipt.AssetIDs,
		UnstakedAtTick:      receipt.UnstakedAtTick,
		UnbondingEndsAtTick: receipt.UnbondingEndsAtTick,
	}, nil
}
