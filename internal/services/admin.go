package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/relicvault/staking-ledger-service/internal/observability/metrics"
	queueclient "github.com/relicvault/staking-ledger-service/internal/queue/client"
	"github.com/relicvault/staking-ledger-service/internal/types"
)

type RewardRateUpdatePublic struct {
	OldRate uint64 `json:"old_rate"`
	NewRate uint64 `json:"new_rate"`
}

type PausedPublic struct {
	Paused bool `json:"paused"`
}

// UpdateRewardRate changes the per-tick reward rate. The new rate applies
// to every claim from now on, including assets unstaked under the old one.
func (s *Services) UpdateRewardRate(
	ctx context.Context, callerAddress string, newRate uint64,
) (*RewardRateUpdatePublic, *types.Error) {
	update, err := s.Ledger.UpdateRewardRate(ctx, callerAddress, newRate)
	if err != nil {
		metrics.RecordLedgerOperation("update_reward_rate", metrics.Error)
		return nil, mapLedgerError(ctx, "update_reward_rate", err)
	}
	metrics.RecordLedgerOperation("update_reward_rate", metrics.Success)
	log.Ctx(ctx).Info().
		Uint64("oldRate", update.OldRate).
		Uint64("newRate", update.NewRate).
		Msg("reward rate updated")

	rateEvent := queueclient.NewRewardRateUpdatedEvent(update.OldRate, update.NewRate)
	if publishErr := s.Queues.PublishRewardRateUpdatedEvent(ctx, rateEvent); publishErr != nil {
		log.Ctx(ctx).Error().Err(publishErr).Msg("failed to publish reward rate updated event")
	}

	return &RewardRateUpdatePublic{OldRate: update.OldRate, NewRate: update.NewRate}, nil
}

// SetPaused toggles the staking intake. Unstake, withdraw and claim keep
// working while paused.
func (s *Services) SetPaused(
	ctx context.Context, callerAddress string, paused bool,
) (*PausedPublic, *types.Error) {
	if err := s.Ledger.SetPaused(ctx, callerAddress, paused); err != nil {
		metrics.RecordLedgerOperation("set_paused", metrics.Error)
		return nil, mapLedgerError(ctx, "set_paused", err)
	}
	metrics.RecordLedgerOperation("set_paused", metrics.Success)
	log.Ctx(ctx).Info().Bool("paused", paused).Msg("staking intake pause flag updated")

	return &PausedPublic{Paused: paused}, nil
}
