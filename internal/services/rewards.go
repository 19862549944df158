package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/relicvault/staking-ledger-service/internal/observability/metrics"
	queueclient "github.com/relicvault/staking-ledger-service/internal/queue/client"
	"github.com/relicvault/staking-ledger-service/internal/types"
)

type ClaimReceiptPublic struct {
	StakerAddress string   `json:"staker_address"`
	AssetIDs      []uint64 `json:"asset_ids"`
	RewardAmount  uint64   `json:"reward_amount"`
	ClaimedAtTick uint64   `json:"claimed_at_tick"`
}

// ClaimRewards disburses the accrued reward for every settled pending
// asset and closes their ledger records, then emits the claimed event.
func (s *Services) ClaimRewards(
	ctx context.Context, stakerAddress string,
) (*ClaimReceiptPublic, *types.Error) {
	receipt, err := s.Ledger.ClaimRewards(ctx, stakerAddress)
	if err != nil {
		metrics.RecordLedgerOperation("claim_rewards", metrics.Error)
		return nil, mapLedgerError(ctx, "claim_rewards", err)
	}
	metrics.RecordLedgerOperation("claim_rewards", metrics.Success)

	claimedEvent := queueclient.NewRewardsClaimedEvent(
		receipt.StakerAddress, receipt.AssetIDs, receipt.RewardAmount, receipt.ClaimedAtTick,
	)
	if publishErr := s.Queues.PublishRewardsClaimedEvent(ctx, claimedEvent); publishErr != nil {
		log.Ctx(ctx).Error().Err(publishErr).Msg("failed to publish rewards claimed event")
	}

	return &ClaimReceiptPublic{
		StakerAddress: receipt.StakerAddress,
		AssetIDs:      receipt.AssetIDs,
		RewardAmount:  receipt.RewardAmount,
		ClaimedAtTick: receipt.ClaimedAtTick,
	}, nil
}
