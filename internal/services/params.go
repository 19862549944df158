package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/relicvault/staking-ledger-service/internal/config"
	"github.com/relicvault/staking-ledger-service/internal/db"
	"github.com/relicvault/staking-ledger-service/internal/db/model"
)

type ParamsPublic struct {
	CurrentTick           uint64 `json:"current_tick"`
	GenesisUnix           int64  `json:"genesis_unix"`
	TickIntervalMs        int64  `json:"tick_interval_ms"`
	UnbondingWindowTicks  uint64 `json:"unbonding_window_ticks"`
	SettlementWindowTicks uint64 `json:"settlement_window_ticks"`
	RewardRatePerTick     uint64 `json:"reward_rate_per_tick"`
	Paused                bool   `json:"paused"`
	MaxBatchSize          int    `json:"max_batch_size"`
	VaultAddress          string `json:"vault_address"`
}

// bootstrapLedgerParams writes the params document on the very first boot
// and verifies the configured identity matches the persisted one on every
// later boot. A mismatch refuses to start: changing the tick base, the
// windows or the addresses under live records would corrupt every in-flight
// position.
func bootstrapLedgerParams(
	ctx context.Context, dbClient db.DBClient, cfg *config.LedgerConfig,
) (*model.LedgerParamsDocument, error) {
	configured := &model.LedgerParamsDocument{
		Id:                    model.LedgerParamsDocumentID,
		GenesisUnix:           cfg.GenesisTime.Unix(),
		TickIntervalMs:        cfg.TickInterval.Milliseconds(),
		UnbondingWindowTicks:  cfg.UnbondingWindowTicks,
		SettlementWindowTicks: cfg.SettlementWindowTicks,
		RewardRatePerTick:     cfg.RewardRatePerTick,
		AdminAddress:          cfg.Admin.Hex(),
		VaultAddress:          cfg.Vault.Hex(),
		Paused:                false,
		CreatedAt:             time.Now().Unix(),
	}

	err := dbClient.InitLedgerParams(ctx, configured)
	if err == nil {
		log.Ctx(ctx).Info().Msg("initialized ledger params on first boot")
		return configured, nil
	}
	if !db.IsDuplicateKeyError(err) {
		return nil, err
	}

	persisted, err := dbClient.GetLedgerParams(ctx)
	if err != nil {
		return nil, err
	}
	if err := verifyLedgerIdentity(persisted, configured); err != nil {
		return nil, err
	}
	return persisted, nil
}

// verifyLedgerIdentity compares the immutable params. The reward rate and
// the pause flag are mutable at runtime and deliberately not compared.
func verifyLedgerIdentity(persisted, configured *model.LedgerParamsDocument) error {
	if persisted.GenesisUnix != configured.GenesisUnix {
		return fmt.Errorf(
			"configured genesis %d does not match persisted genesis %d",
			configured.GenesisUnix, persisted.GenesisUnix,
		)
	}
	if persisted.TickIntervalMs != configured.TickIntervalMs {
		return fmt.Errorf(
			"configured tick interval %dms does not match persisted tick interval %dms",
			configured.TickIntervalMs, persisted.TickIntervalMs,
		)
	}
	if persisted.UnbondingWindowTicks != configured.UnbondingWindowTicks {
		return fmt.Errorf(
			"configured unbonding window %d does not match persisted unbonding window %d",
			configured.UnbondingWindowTicks, persisted.UnbondingWindowTicks,
		)
	}
	if persisted.SettlementWindowTicks != configured.SettlementWindowTicks {
		return fmt.Errorf(
			"configured settlement window %d does not match persisted settlement window %d",
			configured.SettlementWindowTicks, persisted.SettlementWindowTicks,
		)
	}
	if persisted.AdminAddress != configured.AdminAddress {
		return fmt.Errorf(
			"configured admin address %s does not match persisted admin address %s",
			configured.AdminAddress, persisted.AdminAddress,
		)
	}
	if persisted.VaultAddress != configured.VaultAddress {
		return fmt.Errorf(
			"configured vault address %s does not match persisted vault address %s",
			configured.VaultAddress, persisted.VaultAddress,
		)
	}
	return nil
}

// GetLedgerParams returns the public view of the ledger parameters together
// with the current tick.
func (s *Services) GetLedgerParams(ctx context.Context) *ParamsPublic {
	return &ParamsPublic{
		CurrentTick:           s.Ledger.CurrentTick(),
		GenesisUnix:           s.cfg.Ledger.GenesisTime.Unix(),
		TickIntervalMs:        s.cfg.Ledger.TickInterval.Milliseconds(),
		UnbondingWindowTicks:  s.Ledger.UnbondingWindowTicks(),
		SettlementWindowTicks: s.Ledger.SettlementWindowTicks(),
		RewardRatePerTick:     s.Ledger.RewardRatePerTick(),
		Paused:                s.Ledger.Paused(),
		MaxBatchSize:          s.Ledger.MaxBatchSize(),
		VaultAddress:          s.Ledger.VaultAddress(),
	}
}
