package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/relicvault/staking-ledger-service/internal/db"
)

// Stake moves the batch into escrow custody and opens one ledger record per
// asset at the current tick. Either every asset in the batch is staked or
// none are.
func (l *Ledger) Stake(ctx context.Context, stakerAddress string, assetIDs []uint64) (*StakeReceipt, error) {
	if err := l.validateBatch(assetIDs); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.paused {
		return nil, ErrStakingPaused
	}

	// Holding the asset is checked up front so a stray id fails the batch
	// before any custody moves.
	for _, assetID := range assetIDs {
		owner, ownerErr := l.assetRegistry.OwnerOf(ctx, assetID)
		if ownerErr != nil {
			return nil, fmt.Errorf("asset %d: %w: %s", assetID, ErrCustodyTransferDenied, ownerErr.Err)
		}
		if owner != stakerAddress {
			return nil, fmt.Errorf("asset %d is held by %s: %w", assetID, owner, ErrCustodyTransferDenied)
		}
	}

	stakedAtTick := l.ticks.CurrentTick()

	escrowed := false
	err := l.dbClient.SaveStakedAssets(
		ctx, stakerAddress, assetIDs, stakedAtTick,
		func(sessCtx context.Context) error {
			// The transaction callback can run more than once, custody
			// moves only on the first pass.
			if escrowed {
				return nil
			}
			if err := l.escrowAssets(sessCtx, stakerAddress, assetIDs); err != nil {
				return err
			}
			escrowed = true
			return nil
		},
	)
	if err != nil {
		if escrowed {
			// Custody moved but the records could not commit, hand the
			// assets back.
			l.releaseAssetsBestEffort(ctx, stakerAddress, assetIDs)
		}
		var duplicateKeyErr *db.DuplicateKeyError
		if errors.As(err, &duplicateKeyErr) {
			return nil, fmt.Errorf("asset %s: %w", duplicateKeyErr.Key, ErrAlreadyStaked)
		}
		return nil, err
	}

	return &StakeReceipt{
		StakerAddress: stakerAddress,
		AssetIDs:      assetIDs,
		StakedAtTick:  stakedAtTick,
	}, nil
}
