package model

const LedgerParamsCollection = "ledger_params"

// LedgerParamsDocumentID is the fixed primary key, the collection holds a
// single document.
const LedgerParamsDocumentID = "ledger_params"

// LedgerParamsDocument pins the ledger identity at first boot. All fields
// except reward_rate_per_tick and paused are immutable, restarts with a
// differing configuration are rejected during bootstrap.
type LedgerParamsDocument struct {
	Id                    string `bson:"_id"`
	GenesisUnix           int64  `bson:"genesis_unix"`
	TickIntervalMs        int64  `bson:"tick_interval_ms"`
	UnbondingWindowTicks  uint64 `bson:"unbonding_window_ticks"`
	SettlementWindowTicks uint64 `bson:"settlement_window_ticks"`
	RewardRatePerTick     uint64 `bson:"reward_rate_per_tick"`
	AdminAddress          string `bson:"admin_address"`
	VaultAddress          string `bson:"vault_address"`
	Paused                bool   `bson:"paused"`
	CreatedAt             int64  `bson:"created_at"`
}
