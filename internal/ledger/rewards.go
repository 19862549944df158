package ledger

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/relicvault/staking-ledger-service/internal/db"
	"github.com/relicvault/staking-ledger-service/internal/observability/metrics"
)

// ClaimRewards settles the staker's entire pending set. The accrued reward
// is disbursed through the reward ledger and the consumed records together
// with their pending entries are deleted in the same transaction, so a
// settled asset can never be claimed twice.
//
// Each asset earns over its full staked-to-unbonding-end span at the rate
// in force right now: a rate change between unstake and claim changes the
// payout.
func (l *Ledger) ClaimRewards(ctx context.Context, stakerAddress string) (*ClaimReceipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	pendingSet, err := l.dbClient.FindPendingSet(ctx, stakerAddress)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, ErrNoUnstakedAssets
		}
		return nil, err
	}

	records, err := l.loadPendingRecords(ctx, pendingSet.AssetIDs)
	if err != nil {
		return nil, err
	}

	claimedAtTick := l.ticks.CurrentTick()

	var rewardAmount uint64
	for _, assetID := range pendingSet.AssetIDs {
		record := records[assetID]
		if !record.IsWithdrawn {
			return nil, fmt.Errorf("asset %d: %w", assetID, ErrNotWithdrawn)
		}
		// Settlement requires the tick to have moved strictly past the end
		// of the settlement window.
		if claimedAtTick <= record.SettlementEndsAtTick {
			return nil, fmt.Errorf("asset %d: %w", assetID, ErrSettlementNotElapsed)
		}
		rewardAmount += record.AccruedTicks() * l.rewardRatePerTick
	}
	if rewardAmount == 0 {
		return nil, ErrNothingToClaim
	}

	disbursed := false
	err = l.dbClient.SettleStakedAssets(
		ctx, stakerAddress, pendingSet.AssetIDs, rewardAmount,
		func(sessCtx context.Context) error {
			if disbursed {
				return nil
			}
			if transferErr := l.rewardLedger.Transfer(sessCtx, stakerAddress, rewardAmount); transferErr != nil {
				return fmt.Errorf("%w: %s", ErrRewardTransferFailed, transferErr.Err)
			}
			disbursed = true
			return nil
		},
	)
	if err != nil {
		if disbursed {
			// The reward moved but the settlement could not commit. There is
			// no reverse transfer on the reward ledger, flag the staker for
			// operator reconciliation.
			metrics.RecordRewardReconciliationRequired()
			log.Ctx(ctx).Error().Err(err).
				Str("stakerAddress", stakerAddress).
				Uint64("rewardAmount", rewardAmount).
				Msg("reward disbursed but settlement failed to commit, manual reconciliation required")
		}
		return nil, err
	}

	return &ClaimReceipt{
		StakerAddress: stakerAddress,
		AssetIDs:      pendingSet.AssetIDs,
		RewardAmount:  rewardAmount,
		ClaimedAtTick: claimedAtTick,
	}, nil
}
