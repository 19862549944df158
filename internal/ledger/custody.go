package ledger

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/relicvault/staking-ledger-service/internal/observability/metrics"
)

// escrowAssets moves the batch from the staker into the vault. On a rejected
// transfer the already-moved prefix is handed back before returning, so a
// failed batch leaves custody where it started.
func (l *Ledger) escrowAssets(ctx context.Context, stakerAddress string, assetIDs []uint64) error {
	for i, assetID := range assetIDs {
		if transferErr := l.assetRegistry.TransferCustody(
			ctx, stakerAddress, l.vaultAddress, assetID,
		); transferErr != nil {
			l.releaseAssetsBestEffort(ctx, stakerAddress, assetIDs[:i])
			return fmt.Errorf("asset %d: %w: %s", assetID, ErrCustodyTransferDenied, transferErr.Err)
		}
	}
	return nil
}

// releaseAssets moves the batch from the vault back to the staker. On a
// rejected transfer the already-released prefix is re-escrowed before
// returning.
func (l *Ledger) releaseAssets(ctx context.Context, stakerAddress string, assetIDs []uint64) error {
	for i, assetID := range assetIDs {
		if transferErr := l.assetRegistry.TransferCustody(
			ctx, l.vaultAddress, stakerAddress, assetID,
		); transferErr != nil {
			l.escrowAssetsBestEffort(ctx, stakerAddress, assetIDs[:i])
			return fmt.Errorf("asset %d: %w: %s", assetID, ErrCustodyTransferDenied, transferErr.Err)
		}
	}
	return nil
}

// releaseAssetsBestEffort hands assets back to the staker after an aborted
// operation. A transfer that fails here leaves the asset stranded in the
// vault with no ledger record, which only an operator can untangle.
func (l *Ledger) releaseAssetsBestEffort(ctx context.Context, stakerAddress string, assetIDs []uint64) {
	for _, assetID := range assetIDs {
		if transferErr := l.assetRegistry.TransferCustody(
			ctx, l.vaultAddress, stakerAddress, assetID,
		); transferErr != nil {
			metrics.RecordCustodyReconciliationRequired()
			log.Ctx(ctx).Error().Err(transferErr.Err).
				Uint64("assetId", assetID).
				Str("stakerAddress", stakerAddress).
				Msg("failed to hand asset back after aborted operation, manual reconciliation required")
		}
	}
}

// escrowAssetsBestEffort pulls assets back into the vault after an aborted
// withdrawal.
func (l *Ledger) escrowAssetsBestEffort(ctx context.Context, stakerAddress string, assetIDs []uint64) {
	for _, assetID := range assetIDs {
		if transferErr := l.assetRegistry.TransferCustody(
			ctx, stakerAddress, l.vaultAddress, assetID,
		); transferErr != nil {
			metrics.RecordCustodyReconciliationRequired()
			log.Ctx(ctx).Error().Err(transferErr.Err).
				Uint64("assetId", assetID).
				Str("stakerAddress", stakerAddress).
				Msg("failed to re-escrow asset after aborted withdrawal, manual reconciliation required")
		}
	}
}
