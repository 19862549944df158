package ledger

import (
	"context"
	"fmt"

	"github.com/relicvault/staking-ledger-service/internal/db"
)

// Withdraw returns custody of every eligible pending asset to the staker
// and opens the settlement window on each. The operation is all-or-nothing
// across the pending set: one asset still inside its unbonding window fails
// the whole call. Pending assets withdrawn by an earlier call are skipped,
// they are waiting on settlement and hold no custody to return.
func (l *Ledger) Withdraw(ctx context.Context, stakerAddress string) (*WithdrawReceipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	pendingSet, err := l.dbClient.FindPendingSet(ctx, stakerAddress)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, ErrNoPendingAssets
		}
		return nil, err
	}

	records, err := l.loadPendingRecords(ctx, pendingSet.AssetIDs)
	if err != nil {
		return nil, err
	}

	withdrawnAtTick := l.ticks.CurrentTick()

	assetIDs := make([]uint64, 0, len(pendingSet.AssetIDs))
	for _, assetID := range pendingSet.AssetIDs {
		record := records[assetID]
		if record.IsWithdrawn {
			continue
		}
		// Withdrawal requires the tick to have moved strictly past the end
		// of the unbonding window.
		if withdrawnAtTick <= record.UnbondingEndsAtTick {
			return nil, fmt.Errorf("asset %d: %w", assetID, ErrUnbondingNotElapsed)
		}
		assetIDs = append(assetIDs, assetID)
	}
	if len(assetIDs) == 0 {
		return nil, ErrNoPendingAssets
	}

	settlementEndsAtTick := withdrawnAtTick + l.settlementWindowTicks

	released := false
	err = l.dbClient.TransitionToWithdrawn(
		ctx, stakerAddress, assetIDs, settlementEndsAtTick,
		func(sessCtx context.Context) error {
			if released {
				return nil
			}
			if err := l.releaseAssets(sessCtx, stakerAddress, assetIDs); err != nil {
				return err
			}
			released = true
			return nil
		},
	)
	if err != nil {
		if released {
			// Custody went back to the staker but the records could not
			// commit, pull the assets into the vault again.
			l.escrowAssetsBestEffort(ctx, stakerAddress, assetIDs)
		}
		return nil, err
	}

	return &WithdrawReceipt{
		StakerAddress:        stakerAddress,
		AssetIDs:             assetIDs,
		WithdrawnAtTick:      withdrawnAtTick,
		SettlementEndsAtTick: settlementEndsAtTick,
	}, nil
}
