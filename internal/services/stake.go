package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/relicvault/staking-ledger-service/internal/observability/metrics"
	queueclient "github.com/relicvault/staking-ledger-service/internal/queue/client"
	"github.com/relicvault/staking-ledger-service/internal/types"
)

type StakeReceiptPublic struct {
	StakerAddress string   `json:"staker_address"`
	AssetIDs      []uint64 `json:"asset_ids"`
	StakedAtTick  uint64   `json:"staked_at_tick"`
}

// StakeAssets moves the batch into escrow custody and opens the ledger
// records, then emits the staked event.
func (s *Services) StakeAssets(
	ctx context.Context, stakerAddress string, assetIDs []uint64,
) (*StakeReceiptPublic, *types.Error) {
	receipt, err := s.Ledger.Stake(ctx, stakerAddress, assetIDs)
	if err != nil {
		metrics.RecordLedgerOperation("stake", metrics.Error)
		return nil, mapLedgerError(ctx, "stake", err)
	}
	metrics.RecordLedgerOperation("stake", metrics.Success)

	stakedEvent := queueclient.NewAssetStakedEvent(
		receipt.StakerAddress, receipt.AssetIDs, receipt.StakedAtTick,
	)
	if publishErr := s.Queues.PublishAssetStakedEvent(ctx, stakedEvent); publishErr != nil {
		// The event is parked for replay, the stake itself committed.
		log.Ctx(ctx).Error().Err(publishErr).Msg("failed to publish asset staked event")
	}

	return &StakeReceiptPublic{
		StakerAddress: receipt.StakerAddress,
		AssetIDs:      receipt.AssetIDs,
		StakedAtTick:  receipt.StakedAtTick,
	}, nil
}
