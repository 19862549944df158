package ledger_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/relicvault/staking-ledger-service/internal/db/model"
	"github.com/relicvault/staking-ledger-service/internal/ledger"
	"github.com/relicvault/staking-ledger-service/internal/types"
	"github.com/relicvault/staking-ledger-service/tests/testutil"
)

func TestWithdrawAtUnbondingBoundaryFails(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	assetIDs := testutil.RandomAssetIDs(1)
	f.mustStake(t, assetIDs...)
	f.ticks.SetTick(5)
	f.mustUnstake(t, assetIDs...)

	// The window ends at tick 25, eligibility starts strictly after it.
	f.ticks.SetTick(5 + unbondingWindow)
	_, err := f.ledger.Withdraw(ctx, f.staker)
	require.ErrorIs(t, err, ledger.ErrUnbondingNotElapsed)
	require.False(t, f.store.Assets[assetIDs[0]].IsWithdrawn)

	f.ticks.SetTick(5 + unbondingWindow + 1)
	f.expectRelease(assetIDs...)
	receipt, err := f.ledger.Withdraw(ctx, f.staker)
	require.NoError(t, err)
	require.Equal(t, assetIDs, receipt.AssetIDs)
}

func TestWithdrawWithNoPendingAssets(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.ledger.Withdraw(context.Background(), f.staker)

	require.ErrorIs(t, err, ledger.ErrNoPendingAssets)
}

func TestWithdrawReturnsCustodyAndOpensSettlement(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	assetIDs := testutil.RandomAssetIDs(2)
	f.mustStake(t, assetIDs...)
	f.ticks.SetTick(5)
	f.mustUnstake(t, assetIDs...)

	f.ticks.SetTick(40)
	f.expectRelease(assetIDs...)
	receipt, err := f.ledger.Withdraw(ctx, f.staker)

	require.NoError(t, err)
	require.Equal(t, assetIDs, receipt.AssetIDs)
	require.Equal(t, uint64(40), receipt.WithdrawnAtTick)
	require.Equal(t, uint64(40+settlementWindow), receipt.SettlementEndsAtTick)

	for _, assetID := range assetIDs {
		record := f.store.Assets[assetID]
		require.True(t, record.IsWithdrawn)
		require.Equal(t, uint64(40+settlementWindow), record.SettlementEndsAtTick)
		f.registry.AssertCalled(t, "TransferCustody", mock.Anything, f.vault, f.staker, assetID)
	}
	// Withdrawal keeps the ids pending until settlement clears them.
	require.Equal(t, assetIDs, f.store.Pending[f.staker])
}

func TestWithdrawIsAllOrNothingAcrossPendingSet(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	assetIDs := testutil.RandomAssetIDs(2)
	f.mustStake(t, assetIDs...)
	f.ticks.SetTick(5)
	f.mustUnstake(t, assetIDs[0])
	f.ticks.SetTick(10)
	f.mustUnstake(t, assetIDs[1])

	// First asset unbonded at 25, second only at 30.
	f.ticks.SetTick(26)
	_, err := f.ledger.Withdraw(ctx, f.staker)

	require.ErrorIs(t, err, ledger.ErrUnbondingNotElapsed)
	require.False(t, f.store.Assets[assetIDs[0]].IsWithdrawn)
	require.False(t, f.store.Assets[assetIDs[1]].IsWithdrawn)
	f.registry.AssertNotCalled(t, "TransferCustody", mock.Anything, f.vault, f.staker, assetIDs[0])
}

func TestWithdrawSkipsAlreadyWithdrawnAssets(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	assetIDs := testutil.RandomAssetIDs(2)
	f.mustStake(t, assetIDs...)

	f.ticks.SetTick(5)
	f.mustUnstake(t, assetIDs[0])
	f.ticks.SetTick(26)
	f.expectRelease(assetIDs[0])
	first, err := f.ledger.Withdraw(ctx, f.staker)
	require.NoError(t, err)
	require.Equal(t, []uint64{assetIDs[0]}, first.AssetIDs)

	f.ticks.SetTick(30)
	f.mustUnstake(t, assetIDs[1])
	f.ticks.SetTick(51)
	f.expectRelease(assetIDs[1])
	second, err := f.ledger.Withdraw(ctx, f.staker)
	require.NoError(t, err)
	// Only the newly unbonded asset moves, the first one holds no custody.
	require.Equal(t, []uint64{assetIDs[1]}, second.AssetIDs)

	_, err = f.ledger.Withdraw(ctx, f.staker)
	require.ErrorIs(t, err, ledger.ErrNoPendingAssets)
}

func TestWithdrawCommitFailureReescrowsAssets(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	assetIDs := testutil.RandomAssetIDs(1)
	f.mustStake(t, assetIDs...)
	f.ticks.SetTick(5)
	f.mustUnstake(t, assetIDs...)

	f.store.FailWithdrawCommit = &failedCommitError{}
	f.ticks.SetTick(26)
	f.expectRelease(assetIDs...)
	// The compensating transfer pulls the asset back into the vault.
	f.registry.On("TransferCustody", mock.Anything, f.staker, f.vault, assetIDs[0]).Return(nil)

	_, err := f.ledger.Withdraw(ctx, f.staker)

	require.Error(t, err)
	require.False(t, f.store.Assets[assetIDs[0]].IsWithdrawn)
}

// settleFixture walks one asset through stake, unstake and withdraw so the
// claim path can be exercised in isolation. Returns the expected reward span.
func settleFixture(t *testing.T, f *ledgerFixture, assetID uint64) uint64 {
	t.Helper()
	ctx := context.Background()

	f.ticks.SetTick(100)
	f.mustStake(t, assetID)
	f.ticks.SetTick(110)
	f.mustUnstake(t, assetID)

	f.ticks.SetTick(131)
	f.expectRelease(assetID)
	_, err := f.ledger.Withdraw(ctx, f.staker)
	require.NoError(t, err)

	// Staked at 100, unbonding ended at 110+20: the span is 30 ticks.
	return 110 + unbondingWindow - 100
}

func TestClaimRewardsPaysFullStakedToUnbondingSpan(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	assetID := testutil.RandomAssetIDs(1)[0]
	span := settleFixture(t, f, assetID)

	expectedReward := span * initialRate
	require.Equal(t, uint64(150), expectedReward)

	// Settlement window opened at 131 and ends at 161. How long the claim
	// waits beyond that has no effect on the amount.
	f.ticks.SetTick(200)
	f.reward.On("Transfer", mock.Anything, f.staker, expectedReward).Return(nil)
	receipt, err := f.ledger.ClaimRewards(ctx, f.staker)

	require.NoError(t, err)
	require.Equal(t, expectedReward, receipt.RewardAmount)
	require.Equal(t, []uint64{assetID}, receipt.AssetIDs)
}

func TestClaimRewardsDeletesConsumedRecords(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	assetID := testutil.RandomAssetIDs(1)[0]
	span := settleFixture(t, f, assetID)

	f.ticks.SetTick(162)
	f.reward.On("Transfer", mock.Anything, f.staker, span*initialRate).Return(nil)
	_, err := f.ledger.ClaimRewards(ctx, f.staker)
	require.NoError(t, err)

	require.Empty(t, f.store.Assets)
	require.Empty(t, f.store.Pending)

	_, err = f.ledger.ClaimRewards(ctx, f.staker)
	require.ErrorIs(t, err, ledger.ErrNoUnstakedAssets)
}

func TestClaimRewardsRequiresWithdrawal(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	assetIDs := testutil.RandomAssetIDs(1)
	f.mustStake(t, assetIDs...)
	f.ticks.SetTick(5)
	f.mustUnstake(t, assetIDs...)

	f.ticks.SetTick(500)
	_, err := f.ledger.ClaimRewards(ctx, f.staker)

	require.ErrorIs(t, err, ledger.ErrNotWithdrawn)
}

func TestClaimRewardsAtSettlementBoundaryFails(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	assetID := testutil.RandomAssetIDs(1)[0]
	settleFixture(t, f, assetID)

	// Settlement ends at 161, the boundary tick itself is not claimable.
	f.ticks.SetTick(131 + settlementWindow)
	_, err := f.ledger.ClaimRewards(ctx, f.staker)

	require.ErrorIs(t, err, ledger.ErrSettlementNotElapsed)
	require.Contains(t, f.store.Assets, assetID)
}

func TestClaimRewardsTransferFailureKeepsRecords(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	assetID := testutil.RandomAssetIDs(1)[0]
	span := settleFixture(t, f, assetID)
	expectedReward := span * initialRate

	f.ticks.SetTick(162)
	f.reward.On("Transfer", mock.Anything, f.staker, expectedReward).
		Return(types.NewErrorWithMsg(http.StatusBadGateway, types.ExternalCallFailure, "mint cap reached")).
		Once()
	_, err := f.ledger.ClaimRewards(ctx, f.staker)
	require.ErrorIs(t, err, ledger.ErrRewardTransferFailed)
	require.Contains(t, f.store.Assets, assetID)
	require.Equal(t, []uint64{assetID}, f.store.Pending[f.staker])

	// Once the reward ledger recovers the retry settles cleanly.
	f.reward.On("Transfer", mock.Anything, f.staker, expectedReward).Return(nil)
	receipt, err := f.ledger.ClaimRewards(ctx, f.staker)
	require.NoError(t, err)
	require.Equal(t, expectedReward, receipt.RewardAmount)
	require.Empty(t, f.store.Assets)
}

func TestClaimRewardsZeroRewardFails(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	assetID := testutil.RandomAssetIDs(1)[0]

	// A record whose unbonding window closed the moment it was staked earns
	// nothing, the claim must not disburse a zero transfer.
	f.store.Assets[assetID] = model.StakedAssetDocument{
		AssetID:              assetID,
		StakerAddress:        f.staker,
		StakedAtTick:         50,
		IsUnstaked:           true,
		UnstakedAtTick:       50,
		UnbondingEndsAtTick:  50,
		IsWithdrawn:          true,
		SettlementEndsAtTick: 60,
	}
	f.store.Pending[f.staker] = []uint64{assetID}

	f.ticks.SetTick(61)
	_, err := f.ledger.ClaimRewards(ctx, f.staker)

	require.ErrorIs(t, err, ledger.ErrNothingToClaim)
	require.Contains(t, f.store.Assets, assetID)
}

func TestClaimRewardsUsesRateInForceAtClaimTime(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	assetID := testutil.RandomAssetIDs(1)[0]
	span := settleFixture(t, f, assetID)

	// The asset unbonded under rate 5, the claim still pays the new rate.
	newRate := uint64(9)
	_, err := f.ledger.UpdateRewardRate(ctx, f.admin, newRate)
	require.NoError(t, err)

	f.ticks.SetTick(162)
	f.reward.On("Transfer", mock.Anything, f.staker, span*newRate).Return(nil)
	receipt, err := f.ledger.ClaimRewards(ctx, f.staker)

	require.NoError(t, err)
	require.Equal(t, span*newRate, receipt.RewardAmount)
}

func TestUpdateRewardRateByNonAdmin(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.ledger.UpdateRewardRate(context.Background(), f.staker, 9)

	require.ErrorIs(t, err, ledger.ErrNotAdmin)
	require.Equal(t, initialRate, f.ledger.RewardRatePerTick())
	require.Equal(t, initialRate, f.store.Params.RewardRatePerTick)
}

func TestUpdateRewardRateRejectsZero(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.ledger.UpdateRewardRate(context.Background(), f.admin, 0)

	require.ErrorIs(t, err, ledger.ErrInvalidRewardRate)
	require.Equal(t, initialRate, f.ledger.RewardRatePerTick())
}

func TestUpdateRewardRatePersists(t *testing.T) {
	f := newLedgerFixture(t)

	update, err := f.ledger.UpdateRewardRate(context.Background(), f.admin, 9)

	require.NoError(t, err)
	require.Equal(t, initialRate, update.OldRate)
	require.Equal(t, uint64(9), update.NewRate)
	require.Equal(t, uint64(9), f.ledger.RewardRatePerTick())
	require.Equal(t, uint64(9), f.store.Params.RewardRatePerTick)
}

func TestSetPausedByNonAdmin(t *testing.T) {
	f := newLedgerFixture(t)

	err := f.ledger.SetPaused(context.Background(), f.staker, true)

	require.ErrorIs(t, err, ledger.ErrNotAdmin)
	require.False(t, f.ledger.Paused())
}

func TestSetPausedGatesStakeOnly(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	assetIDs := testutil.RandomAssetIDs(1)
	f.mustStake(t, assetIDs...)

	require.NoError(t, f.ledger.SetPaused(ctx, f.admin, true))

	_, err := f.ledger.Stake(ctx, f.staker, testutil.RandomAssetIDs(1))
	require.ErrorIs(t, err, ledger.ErrStakingPaused)

	// Unstake keeps working while paused, nobody's assets are locked in.
	_, err = f.ledger.Unstake(ctx, f.staker, assetIDs)
	require.NoError(t, err)

	require.NoError(t, f.ledger.SetPaused(ctx, f.admin, false))
	newIDs := testutil.RandomAssetIDs(1)
	f.expectEscrow(newIDs...)
	_, err = f.ledger.Stake(ctx, f.staker, newIDs)
	require.NoError(t, err)
}

// Full lifecycle of a single asset, tick by tick.
func TestLedgerEndToEnd(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	assetID := uint64(7)

	f.ticks.SetTick(0)
	f.mustStake(t, assetID)

	f.ticks.SetTick(5)
	unstakeReceipt, err := f.ledger.Unstake(ctx, f.staker, []uint64{assetID})
	require.NoError(t, err)
	require.Equal(t, uint64(25), unstakeReceipt.UnbondingEndsAtTick)

	f.ticks.SetTick(20)
	_, err = f.ledger.Withdraw(ctx, f.staker)
	require.ErrorIs(t, err, ledger.ErrUnbondingNotElapsed)

	f.ticks.SetTick(26)
	f.expectRelease(assetID)
	withdrawReceipt, err := f.ledger.Withdraw(ctx, f.staker)
	require.NoError(t, err)
	require.Equal(t, uint64(56), withdrawReceipt.SettlementEndsAtTick)

	f.ticks.SetTick(40)
	_, err = f.ledger.ClaimRewards(ctx, f.staker)
	require.ErrorIs(t, err, ledger.ErrSettlementNotElapsed)

	f.ticks.SetTick(57)
	expectedReward := uint64(25) * initialRate
	f.reward.On("Transfer", mock.Anything, f.staker, expectedReward).Return(nil)
	claimReceipt, err := f.ledger.ClaimRewards(ctx, f.staker)
	require.NoError(t, err)
	require.Equal(t, expectedReward, claimReceipt.RewardAmount)

	require.Empty(t, f.store.Assets)
	require.Empty(t, f.store.Pending)
}
