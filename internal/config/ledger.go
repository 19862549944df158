package config

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// LedgerConfig carries the staking ledger parameters. The window, tick and
// address fields form the ledger identity: they are persisted on first boot
// and later boots refuse to start if the configured values diverge from the
// persisted ones.
type LedgerConfig struct {
	Genesis               string        `mapstructure:"genesis"`
	TickInterval          time.Duration `mapstructure:"tick-interval"`
	UnbondingWindowTicks  uint64        `mapstructure:"unbonding-window-ticks"`
	SettlementWindowTicks uint64        `mapstructure:"settlement-window-ticks"`
	RewardRatePerTick     uint64        `mapstructure:"reward-rate-per-tick"`
	AdminAddress          string        `mapstructure:"admin-address"`
	VaultAddress          string        `mapstructure:"vault-address"`
	MaxBatchSize          int           `mapstructure:"max-batch-size"`

	GenesisTime time.Time
	Admin       common.Address
	Vault       common.Address
}

func (cfg *LedgerConfig) Validate() error {
	genesis, err := time.Parse(time.RFC3339, cfg.Genesis)
	if err != nil {
		return fmt.Errorf("invalid genesis timestamp: %w", err)
	}

	if cfg.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive")
	}

	if cfg.UnbondingWindowTicks == 0 {
		return fmt.Errorf("unbonding window must be at least 1 tick")
	}

	if cfg.SettlementWindowTicks == 0 {
		return fmt.Errorf("settlement window must be at least 1 tick")
	}

	if cfg.RewardRatePerTick == 0 {
		return fmt.Errorf("reward rate per tick must be positive")
	}

	if !common.IsHexAddress(cfg.AdminAddress) {
		return fmt.Errorf("invalid admin address: %s", cfg.AdminAddress)
	}

	if !common.IsHexAddress(cfg.VaultAddress) {
		return fmt.Errorf("invalid vault address: %s", cfg.VaultAddress)
	}

	if cfg.MaxBatchSize <= 0 {
		return fmt.Errorf("max batch size must be a positive integer")
	}

	cfg.GenesisTime = genesis
	cfg.Admin = common.HexToAddress(cfg.AdminAddress)
	cfg.Vault = common.HexToAddress(cfg.VaultAddress)

	if cfg.Admin == cfg.Vault {
		return fmt.Errorf("admin and vault addresses must differ")
	}

	return nil
}
