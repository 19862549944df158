package model

const OverallStatsCollection = "overall_stats"
const StakerStatsCollection = "staker_stats"

// OverallStatsDocument aggregates ledger-wide counters. The collection is
// logically sharded by _id to avoid write contention, reads sum all shards.
type OverallStatsDocument struct {
	Id                string `bson:"_id"`
	ActiveAssets      int64  `bson:"active_assets"`
	UnbondingAssets   int64  `bson:"unbonding_assets"`
	WithdrawnAssets   int64  `bson:"withdrawn_assets"`
	SettledAssets     int64  `bson:"settled_assets"`
	TotalStakedAssets int64  `bson:"total_staked_assets"`
	RewardsPaid       int64  `bson:"rewards_paid"`
	TotalStakers      uint64 `bson:"total_stakers"`
}

// StakerStatsDocument aggregates per-staker counters, keyed by the staker
// address.
type StakerStatsDocument struct {
	StakerAddress     string `bson:"_id"`
	ActiveAssets      int64  `bson:"active_assets"`
	TotalStakedAssets int64  `bson:"total_staked_assets"`
	RewardsEarned     int64  `bson:"rewards_earned"`
}

type StakerStatsPagination struct {
	StakerAddress string `json:"staker_address"`
	ActiveAssets  int64  `json:"active_assets"`
}

func BuildStakerStatsPaginationToken(d StakerStatsDocument) (string, error) {
	page := StakerStatsPagination{
		StakerAddress: d.StakerAddress,
		ActiveAssets:  d.ActiveAssets,
	}
	return GetPaginationToken(page)
}
