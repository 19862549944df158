package db

import (
	"context"

	"github.com/relicvault/staking-ledger-service/internal/db/model"
)

type DBClient interface {
	Ping(ctx context.Context) error
	InitLedgerParams(ctx context.Context, params *model.LedgerParamsDocument) error
	GetLedgerParams(ctx context.Context) (*model.LedgerParamsDocument, error)
	UpdateRewardRate(ctx context.Context, currentRate, newRate uint64) error
	SetPaused(ctx context.Context, paused bool) error
	SaveStakedAssets(
		ctx context.Context, stakerAddress string, assetIDs []uint64, stakedAtTick uint64,
		escrow func(ctx context.Context) error,
	) error
	FindStakedAssetsByIDs(ctx context.Context, assetIDs []uint64) ([]model.StakedAssetDocument, error)
	FindStakedAssetsByStaker(
		ctx context.Context, stakerAddress string, paginationToken string,
	) (*DbResultMap[model.StakedAssetDocument], error)
	TransitionToUnbonding(
		ctx context.Context, stakerAddress string, assetIDs []uint64,
		unstakedAtTick, unbondingEndsAtTick uint64,
	) error
	TransitionToWithdrawn(
		ctx context.Context, stakerAddress string, assetIDs []uint64, settlementEndsAtTick uint64,
		release func(ctx context.Context) error,
	) error
	SettleStakedAssets(
		ctx context.Context, stakerAddress string, assetIDs []uint64, rewardAmount uint64,
		disburse func(ctx context.Context) error,
	) error
	FindPendingSet(ctx context.Context, stakerAddress string) (*model.PendingSetDocument, error)
	GetOverallStats(ctx context.Context) (*model.OverallStatsDocument, error)
	FindStakerStats(ctx context.Context, stakerAddress string) (*model.StakerStatsDocument, error)
	FindTopStakersByActiveAssets(
		ctx context.Context, paginationToken string,
	) (*DbResultMap[model.StakerStatsDocument], error)
	SaveUnpublishedEvent(ctx context.Context, eventID, queueName, messageBody string) error
	FindUnpublishedEvents(ctx context.Context) ([]model.UnpublishedEventDocument, error)
	DeleteUnpublishedEvent(ctx context.Context, eventID string) error
}
