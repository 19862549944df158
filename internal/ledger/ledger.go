package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/relicvault/staking-ledger-service/internal/clients/assetregistry"
	"github.com/relicvault/staking-ledger-service/internal/clients/rewardledger"
	"github.com/relicvault/staking-ledger-service/internal/clock"
	"github.com/relicvault/staking-ledger-service/internal/config"
	"github.com/relicvault/staking-ledger-service/internal/db"
	"github.com/relicvault/staking-ledger-service/internal/db/model"
	"github.com/relicvault/staking-ledger-service/internal/utils"
)

// Ledger is the staking ledger aggregate. All asset state lives in the
// database, the struct carries the collaborator clients and a cache of the
// mutable params. A single mutex serializes every state-mutating operation:
// batches stay atomic relative to each other and a misbehaving custody
// callback can never re-enter a half-applied operation.
type Ledger struct {
	mu sync.Mutex

	dbClient      db.DBClient
	assetRegistry assetregistry.AssetRegistryClientInterface
	rewardLedger  rewardledger.RewardLedgerClientInterface
	ticks         clock.TickSource

	unbondingWindowTicks  uint64
	settlementWindowTicks uint64
	maxBatchSize          int
	adminAddress          string
	vaultAddress          string

	// Cached from the params document, written through on change.
	// Guarded by mu.
	rewardRatePerTick uint64
	paused            bool
}

// New builds the ledger from the persisted params document. The window and
// address fields come from the document rather than the config so a ledger
// restarted against an existing database keeps the identity it was born
// with.
func New(
	cfg *config.LedgerConfig,
	dbClient db.DBClient,
	assetRegistry assetregistry.AssetRegistryClientInterface,
	rewardLedger rewardledger.RewardLedgerClientInterface,
	ticks clock.TickSource,
	params *model.LedgerParamsDocument,
) *Ledger {
	return &Ledger{
		dbClient:              dbClient,
		assetRegistry:         assetRegistry,
		rewardLedger:          rewardLedger,
		ticks:                 ticks,
		unbondingWindowTicks:  params.UnbondingWindowTicks,
		settlementWindowTicks: params.SettlementWindowTicks,
		maxBatchSize:          cfg.MaxBatchSize,
		adminAddress:          params.AdminAddress,
		vaultAddress:          params.VaultAddress,
		rewardRatePerTick:     params.RewardRatePerTick,
		paused:                params.Paused,
	}
}

// StakeReceipt reports a committed stake batch.
type StakeReceipt struct {
	StakerAddress string
	AssetIDs      []uint64
	StakedAtTick  uint64
}

// UnstakeReceipt reports a committed unstake batch.
type UnstakeReceipt struct {
	StakerAddress       string
	AssetIDs            []uint64
	UnstakedAtTick      uint64
	UnbondingEndsAtTick uint64
}

// WithdrawReceipt reports the assets whose custody was returned in this
// call. Pending assets that were withdrawn earlier are not listed.
type WithdrawReceipt struct {
	StakerAddress        string
	AssetIDs             []uint64
	WithdrawnAtTick      uint64
	SettlementEndsAtTick uint64
}

// ClaimReceipt reports a settled pending set.
type ClaimReceipt struct {
	StakerAddress string
	AssetIDs      []uint64
	RewardAmount  uint64
	ClaimedAtTick uint64
}

// RewardRateUpdate reports a committed rate change.
type RewardRateUpdate struct {
	OldRate uint64
	NewRate uint64
}

func (l *Ledger) CurrentTick() uint64 {
	return l.ticks.CurrentTick()
}

func (l *Ledger) RewardRatePerTick() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rewardRatePerTick
}

func (l *Ledger) Paused() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.paused
}

func (l *Ledger) UnbondingWindowTicks() uint64 {
	return l.unbondingWindowTicks
}

func (l *Ledger) SettlementWindowTicks() uint64 {
	return l.settlementWindowTicks
}

func (l *Ledger) AdminAddress() string {
	return l.adminAddress
}

func (l *Ledger) VaultAddress() string {
	return l.vaultAddress
}

func (l *Ledger) MaxBatchSize() int {
	return l.maxBatchSize
}

func (l *Ledger) validateBatch(assetIDs []uint64) error {
	if len(assetIDs) == 0 {
		return ErrEmptyBatch
	}
	if len(assetIDs) > l.maxBatchSize {
		return fmt.Errorf("%w: %d ids, limit is %d", ErrBatchTooLarge, len(assetIDs), l.maxBatchSize)
	}
	if utils.HasDuplicates(assetIDs) {
		return ErrDuplicateAssetIDs
	}
	return nil
}

// loadPendingRecords fetches the records behind a pending set. Every
// pending id must resolve to a live record, records are only deleted
// together with their pending entries at settlement.
func (l *Ledger) loadPendingRecords(
	ctx context.Context, assetIDs []uint64,
) (map[uint64]model.StakedAssetDocument, error) {
	records, err := l.dbClient.FindStakedAssetsByIDs(ctx, assetIDs)
	if err != nil {
		return nil, err
	}

	recordsByID := make(map[uint64]model.StakedAssetDocument, len(records))
	for _, record := range records {
		recordsByID[record.AssetID] = record
	}
	for _, assetID := range assetIDs {
		if _, found := recordsByID[assetID]; !found {
			return nil, fmt.Errorf("pending asset %d has no ledger record", assetID)
		}
	}
	return recordsByID, nil
}
