package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/relicvault/staking-ledger-service/internal/observability/metrics"
	queueclient "github.com/relicvault/staking-ledger-service/internal/queue/client"
	"github.com/relicvault/staking-ledger-service/internal/types"
)

type WithdrawReceiptPublic struct {
	StakerAddress        string   `json:"staker_address"`
	AssetIDs             []uint64 `json:"asset_ids"`
	WithdrawnAtTick      uint64   `json:"withdrawn_at_tick"`
	SettlementEndsAtTick uint64   `json:"settlement_ends_at_tick"`
}

// WithdrawAssets releases custody of every unbonded pending asset back to
// the staker and starts the settlement window, then emits the withdrawn
// event.
func (s *Services) WithdrawAssets(
	ctx context.Context, stakerAddress string,
) (*WithdrawReceiptPublic, *types.Error) {
	receipt, err := s.Ledger.Withdraw(ctx, stakerAddress)
	if err != nil {
		metrics.RecordLedgerOperation("withdraw", metrics.Error)
		return nil, mapLedgerError(ctx, "withdraw", err)
	}
	metrics.RecordLedgerOperation("withdraw", metrics.Success)

	withdrawnEvent := queueclient.NewAssetWithdrawnEvent(
		receipt.StakerAddress, receipt.AssetIDs, receipt.WithdrawnAtTick, receipt.SettlementEndsAtTick,
	)
	if publishErr := s.Queues.PublishAssetWithdrawnEvent(ctx, withdrawnEvent); publishErr != nil {
		log.Ctx(ctx).Error().Err(publishErr).Msg("failed to publish asset withdrawn event")
	}

	return &WithdrawReceiptPublic{
		StakerAddress:        receipt.StakerAddress,
		AssetIDs:             receipt.AssetIDs,
		WithdrawnAtTick:      receipt.WithdrawnAtTick,
		SettlementEndsAtTick: receipt.SettlementEndsAtTick,
	}, nil
}
