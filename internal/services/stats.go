package services

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/relicvault/staking-ledger-service/internal/db"
	"github.com/relicvault/staking-ledger-service/internal/observability/metrics"
	"github.com/relicvault/staking-ledger-service/internal/types"
)

type OverallStatsPublic struct {
	ActiveAssets      int64  `json:"active_assets"`
	UnbondingAssets   int64  `json:"unbonding_assets"`
	WithdrawnAssets   int64  `json:"withdrawn_assets"`
	SettledAssets     int64  `json:"settled_assets"`
	TotalStakedAssets int64  `json:"total_staked_assets"`
	RewardsPaid       int64  `json:"rewards_paid"`
	TotalStakers      uint64 `json:"total_stakers"`
}

type StakerStatsPublic struct {
	StakerAddress     string `json:"staker_address"`
	ActiveAssets      int64  `json:"active_assets"`
	TotalStakedAssets int64  `json:"total_staked_assets"`
	RewardsEarned     int64  `json:"rewards_earned"`
}

// GetOverallStats returns the service wide counters summed across the
// stats shards.
func (s *Services) GetOverallStats(ctx context.Context) (*OverallStatsPublic, *types.Error) {
	stats, err := s.DbClient.GetOverallStats(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to fetch overall stats")
		return nil, types.NewInternalServiceError(err)
	}

	return &OverallStatsPublic{
		ActiveAssets:      stats.ActiveAssets,
		UnbondingAssets:   stats.UnbondingAssets,
		WithdrawnAssets:   stats.WithdrawnAssets,
		SettledAssets:     stats.SettledAssets,
		TotalStakedAssets: stats.TotalStakedAssets,
		RewardsPaid:       stats.RewardsPaid,
		TotalStakers:      stats.TotalStakers,
	}, nil
}

// GetStakerStats returns the per staker counters. A staker the ledger has
// never seen gets a zeroed row rather than an error.
func (s *Services) GetStakerStats(
	ctx context.Context, stakerAddress string,
) (*StakerStatsPublic, *types.Error) {
	stats, err := s.DbClient.FindStakerStats(ctx, stakerAddress)
	if err != nil {
		if db.IsNotFoundError(err) {
			return &StakerStatsPublic{StakerAddress: stakerAddress}, nil
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to fetch staker stats")
		return nil, types.NewInternalServiceError(err)
	}

	return &StakerStatsPublic{
		StakerAddress:     stats.StakerAddress,
		ActiveAssets:      stats.ActiveAssets,
		TotalStakedAssets: stats.TotalStakedAssets,
		RewardsEarned:     stats.RewardsEarned,
	}, nil
}

// GetTopStakers returns stakers ordered by active asset count, most
// active first.
func (s *Services) GetTopStakers(
	ctx context.Context, pageToken string,
) ([]StakerStatsPublic, string, *types.Error) {
	resultMap, err := s.DbClient.FindTopStakersByActiveAssets(ctx, pageToken)
	if err != nil {
		if db.IsInvalidPaginationTokenError(err) {
			log.Ctx(ctx).Warn().Err(err).Msg("invalid pagination token when fetching top stakers")
			return nil, "", types.NewError(http.StatusBadRequest, types.BadRequest, err)
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to fetch top stakers")
		return nil, "", types.NewInternalServiceError(err)
	}

	stakers := make([]StakerStatsPublic, 0, len(resultMap.Data))
	for _, d := range resultMap.Data {
		stakers = append(stakers, StakerStatsPublic{
			StakerAddress:     d.StakerAddress,
			ActiveAssets:      d.ActiveAssets,
			TotalStakedAssets: d.TotalStakedAssets,
			RewardsEarned:     d.RewardsEarned,
		})
	}
	return stakers, resultMap.PaginationToken, nil
}

// SyncStatsGauges refreshes the prometheus gauges from the database. Runs
// on a poller so the gauges survive restarts without replaying counters.
func (s *Services) SyncStatsGauges(ctx context.Context) error {
	stats, err := s.DbClient.GetOverallStats(ctx)
	if err != nil {
		return err
	}

	metrics.RecordAssetStageCount(types.Staked.ToString(), stats.ActiveAssets)
	metrics.RecordAssetStageCount(types.Unbonding.ToString(), stats.UnbondingAssets)
	metrics.RecordAssetStageCount(types.SettlementPending.ToString(), stats.WithdrawnAssets)
	metrics.RecordAssetStageCount("settled", stats.SettledAssets)
	metrics.RecordTotalStakers(stats.TotalStakers)
	metrics.RecordRewardsPaid(stats.RewardsPaid)
	metrics.RecordCurrentTick(s.Ledger.CurrentTick())
	return nil
}
