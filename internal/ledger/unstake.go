package ledger

import (
	"context"
	"fmt"

	"github.com/relicvault/staking-ledger-service/internal/db/model"
)

// Unstake starts the unbonding window on the batch and appends the ids to
// the staker's pending set. A single bad id aborts the whole batch.
func (l *Ledger) Unstake(ctx context.Context, stakerAddress string, assetIDs []uint64) (*UnstakeReceipt, error) {
	if err := l.validateBatch(assetIDs); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.dbClient.FindStakedAssetsByIDs(ctx, assetIDs)
	if err != nil {
		return nil, err
	}
	recordsByID := make(map[uint64]model.StakedAssetDocument, len(records))
	for _, record := range records {
		recordsByID[record.AssetID] = record
	}

	for _, assetID := range assetIDs {
		record, found := recordsByID[assetID]
		if !found {
			return nil, fmt.Errorf("asset %d: %w", assetID, ErrAssetNotFound)
		}
		if record.StakerAddress != stakerAddress {
			return nil, fmt.Errorf("asset %d: %w", assetID, ErrNotOwner)
		}
		if record.IsUnstaked {
			return nil, fmt.Errorf("asset %d: %w", assetID, ErrAlreadyUnstaked)
		}
	}

	unstakedAtTick := l.ticks.CurrentTick()
	unbondingEndsAtTick := unstakedAtTick + l.unbondingWindowTicks

	if err := l.dbClient.TransitionToUnbonding(
		ctx, stakerAddress, assetIDs, unstakedAtTick, unbondingEndsAtTick,
	); err != nil {
		return nil, err
	}

	return &UnstakeReceipt{
		StakerAddress:       stakerAddress,
		AssetIDs:            assetIDs,
		UnstakedAtTick:      unstakedAtTick,
		UnbondingEndsAtTick: unbondingEndsAtTick,
	}, nil
}
