package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/relicvault/staking-ledger-service/internal/clock"
	"github.com/relicvault/staking-ledger-service/internal/db"
	"github.com/relicvault/staking-ledger-service/internal/db/model"
	"github.com/relicvault/staking-ledger-service/internal/ledger"
	"github.com/relicvault/staking-ledger-service/tests/mocks"
)

const testStakerAddress = "0x71C7656EC7ab88b098defB751B7401B5f6d8976F"

func servicesFixture(t *testing.T, currentTick uint64) (*Services, *mocks.DBClient) {
	t.Helper()
	cfg := validatedLedgerConfig(t)
	dbClient := new(mocks.DBClient)
	params := &model.LedgerParamsDocument{
		Id:                    model.LedgerParamsDocumentID,
		GenesisUnix:           cfg.GenesisTime.Unix(),
		TickIntervalMs:        cfg.TickInterval.Milliseconds(),
		UnbondingWindowTicks:  cfg.UnbondingWindowTicks,
		SettlementWindowTicks: cfg.SettlementWindowTicks,
		RewardRatePerTick:     cfg.RewardRatePerTick,
		AdminAddress:          cfg.Admin.Hex(),
		VaultAddress:          cfg.Vault.Hex(),
	}
	stakingLedger := ledger.New(
		cfg, dbClient, nil, nil, clock.NewManualTickSource(currentTick), params,
	)
	return &Services{DbClient: dbClient, Ledger: stakingLedger}, dbClient
}

func TestGetStakerPendingAssetsEligibility(t *testing.T) {
	svc, dbClient := servicesFixture(t, 40)
	pendingSet := &model.PendingSetDocument{
		StakerAddress: testStakerAddress,
		AssetIDs:      []uint64{1, 2, 3, 4},
	}
	records := []model.StakedAssetDocument{
		// Unbonding window elapsed (40 > 25), waiting for a withdraw call.
		{AssetID: 1, StakerAddress: testStakerAddress, IsUnstaked: true, UnbondingEndsAtTick: 25},
		// Withdrawn, settlement window still open (40 <= 56).
		{AssetID: 2, StakerAddress: testStakerAddress, IsUnstaked: true, IsWithdrawn: true, UnbondingEndsAtTick: 25, SettlementEndsAtTick: 56},
		// Withdrawn and settlement elapsed (40 > 35), rewards claimable.
		{AssetID: 3, StakerAddress: testStakerAddress, IsUnstaked: true, IsWithdrawn: true, UnbondingEndsAtTick: 15, SettlementEndsAtTick: 35},
		// Unbonding ends exactly at the current tick, one tick short.
		{AssetID: 4, StakerAddress: testStakerAddress, IsUnstaked: true, UnbondingEndsAtTick: 40},
	}
	dbClient.On("FindPendingSet", mock.Anything, testStakerAddress).Return(pendingSet, nil)
	dbClient.On("FindStakedAssetsByIDs", mock.Anything, pendingSet.AssetIDs).Return(records, nil)

	pending, apiErr := svc.GetStakerPendingAssets(context.Background(), testStakerAddress)

	require.Nil(t, apiErr)
	require.Equal(t, testStakerAddress, pending.StakerAddress)
	require.Equal(t, uint64(40), pending.CurrentTick)
	require.Equal(t, []PendingAssetPublic{
		{AssetID: 1, State: "withdrawable", Withdrawable: true},
		{AssetID: 2, State: "settlement_pending"},
		{AssetID: 3, State: "claimable", Claimable: true},
		{AssetID: 4, State: "unbonding"},
	}, pending.Assets)
}

func TestGetStakerPendingAssetsNoPendingSet(t *testing.T) {
	svc, dbClient := servicesFixture(t, 40)
	dbClient.On("FindPendingSet", mock.Anything, testStakerAddress).
		Return(nil, &db.NotFoundError{Key: testStakerAddress, Message: "no pending set"})

	pending, apiErr := svc.GetStakerPendingAssets(context.Background(), testStakerAddress)

	require.Nil(t, apiErr)
	require.Equal(t, uint64(40), pending.CurrentTick)
	require.Empty(t, pending.Assets)
	dbClient.AssertNotCalled(t, "FindStakedAssetsByIDs", mock.Anything, mock.Anything)
}

func TestSyncStatsGauges(t *testing.T) {
	svc, dbClient := servicesFixture(t, 40)
	dbClient.On("GetOverallStats", mock.Anything).Return(&model.OverallStatsDocument{
		ActiveAssets:    3,
		UnbondingAssets: 2,
		RewardsPaid:     150,
		TotalStakers:    1,
	}, nil)

	require.NoError(t, svc.SyncStatsGauges(context.Background()))
	dbClient.AssertCalled(t, "GetOverallStats", mock.Anything)
}

func TestSyncStatsGaugesPropagatesError(t *testing.T) {
	svc, dbClient := servicesFixture(t, 40)
	statsErr := errors.New("stats query failed")
	dbClient.On("GetOverallStats", mock.Anything).Return(nil, statsErr)

	require.ErrorIs(t, svc.SyncStatsGauges(context.Background()), statsErr)
}
