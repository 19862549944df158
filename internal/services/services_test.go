package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/relicvault/staking-ledger-service/internal/config"
	"github.com/relicvault/staking-ledger-service/internal/db"
	"github.com/relicvault/staking-ledger-service/internal/db/model"
	"github.com/relicvault/staking-ledger-service/internal/ledger"
	"github.com/relicvault/staking-ledger-service/internal/types"
	"github.com/relicvault/staking-ledger-service/tests/mocks"
)

func TestMapLedgerError(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   types.ErrorCode
	}{
		{"empty batch", ledger.ErrEmptyBatch, http.StatusBadRequest, types.ValidationError},
		{"batch too large", ledger.ErrBatchTooLarge, http.StatusBadRequest, types.ValidationError},
		{"duplicate ids", ledger.ErrDuplicateAssetIDs, http.StatusBadRequest, types.ValidationError},
		{"invalid rate", ledger.ErrInvalidRewardRate, http.StatusBadRequest, types.ValidationError},
		{"not owner", ledger.ErrNotOwner, http.StatusForbidden, types.Unauthorized},
		{"not admin", ledger.ErrNotAdmin, http.StatusForbidden, types.Unauthorized},
		{"asset not found", ledger.ErrAssetNotFound, http.StatusNotFound, types.NotFound},
		{"paused", ledger.ErrStakingPaused, http.StatusConflict, types.PreconditionNotMet},
		{"already staked", ledger.ErrAlreadyStaked, http.StatusConflict, types.PreconditionNotMet},
		{"already unstaked", ledger.ErrAlreadyUnstaked, http.StatusConflict, types.PreconditionNotMet},
		{"no pending assets", ledger.ErrNoPendingAssets, http.StatusConflict, types.PreconditionNotMet},
		{"unbonding not elapsed", ledger.ErrUnbondingNotElapsed, http.StatusConflict, types.PreconditionNotMet},
		{"settlement not elapsed", ledger.ErrSettlementNotElapsed, http.StatusConflict, types.PreconditionNotMet},
		{"nothing to claim", ledger.ErrNothingToClaim, http.StatusConflict, types.PreconditionNotMet},
		{"custody denied", ledger.ErrCustodyTransferDenied, http.StatusBadGateway, types.ExternalCallFailure},
		{"reward transfer failed", ledger.ErrRewardTransferFailed, http.StatusBadGateway, types.ExternalCallFailure},
		{"unexpected error", errors.New("mongo blew up"), http.StatusInternalServerError, types.InternalServiceError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			apiErr := mapLedgerError(ctx, "test", tc.err)
			require.Equal(t, tc.expectedStatus, apiErr.StatusCode)
			require.Equal(t, tc.expectedCode, apiErr.ErrorCode)
		})
	}
}

// Wrapped sentinels must classify the same as bare ones, the ledger wraps
// most of its errors with the offending asset id.
func TestMapLedgerErrorUnwrapsWrappedSentinels(t *testing.T) {
	wrapped := errors.Join(errors.New("asset 42"), ledger.ErrUnbondingNotElapsed)

	apiErr := mapLedgerError(context.Background(), "withdraw", wrapped)

	require.Equal(t, http.StatusConflict, apiErr.StatusCode)
	require.Equal(t, types.PreconditionNotMet, apiErr.ErrorCode)
}

func validatedLedgerConfig(t *testing.T) *config.LedgerConfig {
	t.Helper()
	cfg := &config.LedgerConfig{
		Genesis:               "2024-01-01T00:00:00Z",
		TickInterval:          time.Minute,
		UnbondingWindowTicks:  20,
		SettlementWindowTicks: 30,
		RewardRatePerTick:     5,
		AdminAddress:          "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
		VaultAddress:          "0x2546BcD3c84621e976D8185a91A922aE77ECEc30",
		MaxBatchSize:          10,
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestBootstrapLedgerParamsFirstBoot(t *testing.T) {
	cfg := validatedLedgerConfig(t)
	dbClient := new(mocks.DBClient)
	dbClient.On("InitLedgerParams", mock.Anything, mock.Anything).Return(nil)

	params, err := bootstrapLedgerParams(context.Background(), dbClient, cfg)

	require.NoError(t, err)
	require.Equal(t, cfg.GenesisTime.Unix(), params.GenesisUnix)
	require.Equal(t, cfg.TickInterval.Milliseconds(), params.TickIntervalMs)
	require.Equal(t, cfg.Admin.Hex(), params.AdminAddress)
	require.Equal(t, cfg.Vault.Hex(), params.VaultAddress)
	require.False(t, params.Paused)
	dbClient.AssertNotCalled(t, "GetLedgerParams", mock.Anything)
}

func TestBootstrapLedgerParamsLoadsPersistedOnRestart(t *testing.T) {
	cfg := validatedLedgerConfig(t)
	persisted := &model.LedgerParamsDocument{
		Id:                    model.LedgerParamsDocumentID,
		GenesisUnix:           cfg.GenesisTime.Unix(),
		TickIntervalMs:        cfg.TickInterval.Milliseconds(),
		UnbondingWindowTicks:  cfg.UnbondingWindowTicks,
		SettlementWindowTicks: cfg.SettlementWindowTicks,
		// The persisted rate diverged from the configured one through a
		// runtime update, that is fine and the persisted value wins.
		RewardRatePerTick: 9,
		AdminAddress:      cfg.Admin.Hex(),
		VaultAddress:      cfg.Vault.Hex(),
		Paused:            true,
	}
	dbClient := new(mocks.DBClient)
	dbClient.On("InitLedgerParams", mock.Anything, mock.Anything).
		Return(&db.DuplicateKeyError{Key: model.LedgerParamsDocumentID, Message: "exists"})
	dbClient.On("GetLedgerParams", mock.Anything).Return(persisted, nil)

	params, err := bootstrapLedgerParams(context.Background(), dbClient, cfg)

	require.NoError(t, err)
	require.Equal(t, persisted, params)
	require.Equal(t, uint64(9), params.RewardRatePerTick)
	require.True(t, params.Paused)
}

func TestBootstrapLedgerParamsRefusesChangedIdentity(t *testing.T) {
	cfg := validatedLedgerConfig(t)
	persisted := &model.LedgerParamsDocument{
		Id:                    model.LedgerParamsDocumentID,
		GenesisUnix:           cfg.GenesisTime.Unix(),
		TickIntervalMs:        cfg.TickInterval.Milliseconds(),
		UnbondingWindowTicks:  cfg.UnbondingWindowTicks + 1,
		SettlementWindowTicks: cfg.SettlementWindowTicks,
		RewardRatePerTick:     cfg.RewardRatePerTick,
		AdminAddress:          cfg.Admin.Hex(),
		VaultAddress:          cfg.Vault.Hex(),
	}
	dbClient := new(mocks.DBClient)
	dbClient.On("InitLedgerParams", mock.Anything, mock.Anything).
		Return(&db.DuplicateKeyError{Key: model.LedgerParamsDocumentID, Message: "exists"})
	dbClient.On("GetLedgerParams", mock.Anything).Return(persisted, nil)

	_, err := bootstrapLedgerParams(context.Background(), dbClient, cfg)

	require.Error(t, err)
	require.Contains(t, err.Error(), "unbonding window")
}

func TestVerifyLedgerIdentity(t *testing.T) {
	base := func() *model.LedgerParamsDocument {
		return &model.LedgerParamsDocument{
			GenesisUnix:           1704067200,
			TickIntervalMs:        60000,
			UnbondingWindowTicks:  20,
			SettlementWindowTicks: 30,
			AdminAddress:          "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
			VaultAddress:          "0x2546BcD3c84621e976D8185a91A922aE77ECEc30",
		}
	}

	testCases := []struct {
		name   string
		mutate func(d *model.LedgerParamsDocument)
		errMsg string
	}{
		{"identical", func(d *model.LedgerParamsDocument) {}, ""},
		{
			"mutable fields ignored",
			func(d *model.LedgerParamsDocument) { d.RewardRatePerTick = 99; d.Paused = true },
			"",
		},
		{"genesis", func(d *model.LedgerParamsDocument) { d.GenesisUnix++ }, "genesis"},
		{"tick interval", func(d *model.LedgerParamsDocument) { d.TickIntervalMs = 1 }, "tick interval"},
		{"unbonding window", func(d *model.LedgerParamsDocument) { d.UnbondingWindowTicks = 1 }, "unbonding window"},
		{"settlement window", func(d *model.LedgerParamsDocument) { d.SettlementWindowTicks = 1 }, "settlement window"},
		{
			"admin address",
			func(d *model.LedgerParamsDocument) { d.AdminAddress = "0x0000000000000000000000000000000000000001" },
			"admin address",
		},
		{
			"vault address",
			func(d *model.LedgerParamsDocument) { d.VaultAddress = "0x0000000000000000000000000000000000000002" },
			"vault address",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			persisted := base()
			configured := base()
			tc.mutate(configured)

			err := verifyLedgerIdentity(persisted, configured)
			if tc.errMsg == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.errMsg)
			}
		})
	}
}
