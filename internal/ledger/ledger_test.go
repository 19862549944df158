package ledger_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/relicvault/staking-ledger-service/internal/clock"
	"github.com/relicvault/staking-ledger-service/internal/config"
	"github.com/relicvault/staking-ledger-service/internal/db/model"
	"github.com/relicvault/staking-ledger-service/internal/ledger"
	"github.com/relicvault/staking-ledger-service/internal/types"
	"github.com/relicvault/staking-ledger-service/tests/mocks"
	"github.com/relicvault/staking-ledger-service/tests/testutil"
)

const (
	unbondingWindow  = uint64(20)
	settlementWindow = uint64(30)
	initialRate      = uint64(5)
	maxBatchSize     = 10
)

type ledgerFixture struct {
	store    *testutil.LedgerStore
	registry *mocks.AssetRegistryClientInterface
	reward   *mocks.RewardLedgerClientInterface
	ticks    *clock.ManualTickSource
	ledger   *ledger.Ledger

	staker string
	admin  string
	vault  string
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()

	store := testutil.NewLedgerStore()
	registry := new(mocks.AssetRegistryClientInterface)
	reward := new(mocks.RewardLedgerClientInterface)
	ticks := clock.NewManualTickSource(0)

	admin := testutil.RandomStakerAddress()
	vault := testutil.RandomStakerAddress()
	params := &model.LedgerParamsDocument{
		Id:                    model.LedgerParamsDocumentID,
		UnbondingWindowTicks:  unbondingWindow,
		SettlementWindowTicks: settlementWindow,
		RewardRatePerTick:     initialRate,
		AdminAddress:          admin,
		VaultAddress:          vault,
	}
	require.NoError(t, store.InitLedgerParams(context.Background(), params))

	cfg := &config.LedgerConfig{MaxBatchSize: maxBatchSize}
	return &ledgerFixture{
		store:    store,
		registry: registry,
		reward:   reward,
		ticks:    ticks,
		ledger:   ledger.New(cfg, store, registry, reward, ticks, params),
		staker:   testutil.RandomStakerAddress(),
		admin:    admin,
		vault:    vault,
	}
}

func custodyDenied(reason string) *types.Error {
	return types.NewErrorWithMsg(http.StatusBadGateway, types.ExternalCallFailure, reason)
}

// expectEscrow wires the registry mock for a successful stake of the batch.
func (f *ledgerFixture) expectEscrow(assetIDs ...uint64) {
	for _, assetID := range assetIDs {
		f.registry.On("OwnerOf", mock.Anything, assetID).Return(f.staker, nil)
		f.registry.On("TransferCustody", mock.Anything, f.staker, f.vault, assetID).Return(nil)
	}
}

// expectRelease wires the registry mock for custody moving back to the staker.
func (f *ledgerFixture) expectRelease(assetIDs ...uint64) {
	for _, assetID := range assetIDs {
		f.registry.On("TransferCustody", mock.Anything, f.vault, f.staker, assetID).Return(nil)
	}
}

func (f *ledgerFixture) mustStake(t *testing.T, assetIDs ...uint64) {
	t.Helper()
	f.expectEscrow(assetIDs...)
	_, err := f.ledger.Stake(context.Background(), f.staker, assetIDs)
	require.NoError(t, err)
}

func (f *ledgerFixture) mustUnstake(t *testing.T, assetIDs ...uint64) {
	t.Helper()
	_, err := f.ledger.Unstake(context.Background(), f.staker, assetIDs)
	require.NoError(t, err)
}

func TestStakeCreatesRecords(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	assetIDs := testutil.RandomAssetIDs(3)
	f.ticks.SetTick(7)
	f.expectEscrow(assetIDs...)

	receipt, err := f.ledger.Stake(ctx, f.staker, assetIDs)

	require.NoError(t, err)
	require.Equal(t, f.staker, receipt.StakerAddress)
	require.Equal(t, assetIDs, receipt.AssetIDs)
	require.Equal(t, uint64(7), receipt.StakedAtTick)

	for _, assetID := range assetIDs {
		record, found := f.store.Assets[assetID]
		require.True(t, found)
		require.Equal(t, f.staker, record.StakerAddress)
		require.Equal(t, uint64(7), record.StakedAtTick)
		require.False(t, record.IsUnstaked)
		require.False(t, record.IsWithdrawn)
		require.Zero(t, record.UnstakedAtTick)
		require.Zero(t, record.UnbondingEndsAtTick)
		require.Zero(t, record.SettlementEndsAtTick)
	}
}

func TestStakeEmptyBatch(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.ledger.Stake(context.Background(), f.staker, nil)

	require.ErrorIs(t, err, ledger.ErrEmptyBatch)
	require.Empty(t, f.store.Assets)
}

func TestStakeDuplicateIDsInBatch(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.ledger.Stake(context.Background(), f.staker, []uint64{5, 5})

	require.ErrorIs(t, err, ledger.ErrDuplicateAssetIDs)
	require.Empty(t, f.store.Assets)
}

func TestStakeBatchTooLarge(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.ledger.Stake(context.Background(), f.staker, testutil.RandomAssetIDs(maxBatchSize+1))

	require.ErrorIs(t, err, ledger.ErrBatchTooLarge)
	require.Empty(t, f.store.Assets)
}

func TestStakeWhilePaused(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	require.NoError(t, f.ledger.SetPaused(ctx, f.admin, true))

	_, err := f.ledger.Stake(ctx, f.staker, testutil.RandomAssetIDs(1))

	require.ErrorIs(t, err, ledger.ErrStakingPaused)
	require.Empty(t, f.store.Assets)
}

func TestStakeRejectsAssetHeldByAnotherAddress(t *testing.T) {
	f := newLedgerFixture(t)
	assetIDs := testutil.RandomAssetIDs(1)
	f.registry.On("OwnerOf", mock.Anything, assetIDs[0]).Return(testutil.RandomStakerAddress(), nil)

	_, err := f.ledger.Stake(context.Background(), f.staker, assetIDs)

	require.ErrorIs(t, err, ledger.ErrCustodyTransferDenied)
	require.Empty(t, f.store.Assets)
	f.registry.AssertNotCalled(t, "TransferCustody", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestStakeCustodyDeniedRollsBackBatch(t *testing.T) {
	f := newLedgerFixture(t)
	assetIDs := testutil.RandomAssetIDs(2)
	f.registry.On("OwnerOf", mock.Anything, assetIDs[0]).Return(f.staker, nil)
	f.registry.On("OwnerOf", mock.Anything, assetIDs[1]).Return(f.staker, nil)
	f.registry.On("TransferCustody", mock.Anything, f.staker, f.vault, assetIDs[0]).Return(nil)
	f.registry.On("TransferCustody", mock.Anything, f.staker, f.vault, assetIDs[1]).
		Return(custodyDenied("transfer not approved"))
	// The first asset already moved into the vault and must come back.
	f.expectRelease(assetIDs[0])

	_, err := f.ledger.Stake(context.Background(), f.staker, assetIDs)

	require.ErrorIs(t, err, ledger.ErrCustodyTransferDenied)
	require.Empty(t, f.store.Assets)
	f.registry.AssertCalled(t, "TransferCustody", mock.Anything, f.vault, f.staker, assetIDs[0])
}

func TestStakeCommitFailureReturnsCustody(t *testing.T) {
	f := newLedgerFixture(t)
	assetIDs := testutil.RandomAssetIDs(2)
	f.store.FailStakeCommit = &failedCommitError{}
	f.expectEscrow(assetIDs...)
	f.expectRelease(assetIDs...)

	_, err := f.ledger.Stake(context.Background(), f.staker, assetIDs)

	require.Error(t, err)
	require.Empty(t, f.store.Assets)
	for _, assetID := range assetIDs {
		f.registry.AssertCalled(t, "TransferCustody", mock.Anything, f.vault, f.staker, assetID)
	}
}

func TestStakeAlreadyStakedAsset(t *testing.T) {
	f := newLedgerFixture(t)
	assetIDs := testutil.RandomAssetIDs(1)
	f.mustStake(t, assetIDs...)

	_, err := f.ledger.Stake(context.Background(), f.staker, assetIDs)

	require.ErrorIs(t, err, ledger.ErrAlreadyStaked)
}

func TestUnstakeStartsUnbondingWindow(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	assetIDs := testutil.RandomAssetIDs(2)
	f.ticks.SetTick(3)
	f.mustStake(t, assetIDs...)

	f.ticks.SetTick(10)
	receipt, err := f.ledger.Unstake(ctx, f.staker, assetIDs)

	require.NoError(t, err)
	require.Equal(t, uint64(10), receipt.UnstakedAtTick)
	require.Equal(t, uint64(10+unbondingWindow), receipt.UnbondingEndsAtTick)
	require.Equal(t, assetIDs, f.store.Pending[f.staker])

	for _, assetID := range assetIDs {
		record := f.store.Assets[assetID]
		require.True(t, record.IsUnstaked)
		require.Equal(t, uint64(10), record.UnstakedAtTick)
		require.Equal(t, uint64(10+unbondingWindow), record.UnbondingEndsAtTick)
		require.False(t, record.IsWithdrawn)
	}
}

func TestUnstakeNotOwner(t *testing.T) {
	f := newLedgerFixture(t)
	assetIDs := testutil.RandomAssetIDs(1)
	f.mustStake(t, assetIDs...)

	_, err := f.ledger.Unstake(context.Background(), testutil.RandomStakerAddress(), assetIDs)

	require.ErrorIs(t, err, ledger.ErrNotOwner)
	require.False(t, f.store.Assets[assetIDs[0]].IsUnstaked)
	require.Empty(t, f.store.Pending)
}

func TestUnstakeTwice(t *testing.T) {
	f := newLedgerFixture(t)
	assetIDs := testutil.RandomAssetIDs(1)
	f.mustStake(t, assetIDs...)
	f.mustUnstake(t, assetIDs...)

	_, err := f.ledger.Unstake(context.Background(), f.staker, assetIDs)

	require.ErrorIs(t, err, ledger.ErrAlreadyUnstaked)
	// The pending set still holds the id exactly once.
	require.Equal(t, assetIDs, f.store.Pending[f.staker])
}

func TestUnstakeUnknownAsset(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.ledger.Unstake(context.Background(), f.staker, testutil.RandomAssetIDs(1))

	require.ErrorIs(t, err, ledger.ErrAssetNotFound)
}

func TestUnstakeBatchAbortsOnSingleBadID(t *testing.T) {
	f := newLedgerFixture(t)
	staked := testutil.RandomAssetIDs(1)
	f.mustStake(t, staked...)
	neverStaked := testutil.RandomAssetIDs(1)

	_, err := f.ledger.Unstake(context.Background(), f.staker, []uint64{staked[0], neverStaked[0]})

	require.ErrorIs(t, err, ledger.ErrAssetNotFound)
	require.False(t, f.store.Assets[staked[0]].IsUnstaked)
	require.Empty(t, f.store.Pending)
}

type failedCommitError struct{}

func (e *failedCommitError) Error() string {
	return "transaction commit failed"
}
