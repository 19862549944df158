package client

import "github.com/google/uuid"

const (
	AssetStakedQueueName       string = "asset_staked_queue"
	AssetUnstakedQueueName     string = "asset_unstaked_queue"
	AssetWithdrawnQueueName    string = "asset_withdrawn_queue"
	RewardsClaimedQueueName    string = "rewards_claimed_queue"
	RewardRateUpdatedQueueName string = "reward_rate_updated_queue"
)

type EventType int

const (
	AssetStakedEventType       EventType = 1
	AssetUnstakedEventType     EventType = 2
	AssetWithdrawnEventType    EventType = 3
	RewardsClaimedEventType    EventType = 4
	RewardRateUpdatedEventType EventType = 5
)

type AssetStakedEvent struct {
	EventType     EventType `json:"event_type"` // always 1
	EventID       string    `json:"event_id"`
	StakerAddress string    `json:"staker_address"`
	AssetIDs      []uint64  `json:"asset_ids"`
	StakedAtTick  uint64    `json:"staked_at_tick"`
}

func NewAssetStakedEvent(stakerAddress string, assetIDs []uint64, stakedAtTick uint64) AssetStakedEvent {
	return AssetStakedEvent{
		EventType:     AssetStakedEventType,
		EventID:       uuid.NewString(),
		StakerAddress: stakerAddress,
		AssetIDs:      assetIDs,
		StakedAtTick:  stakedAtTick,
	}
}

type AssetUnstakedEvent struct {
	EventType           EventType `json:"event_type"` // always 2
	EventID             string    `json:"event_id"`
	StakerAddress       string    `json:"staker_address"`
	AssetIDs            []uint64  `json:"asset_ids"`
	UnstakedAtTick      uint64    `json:"unstaked_at_tick"`
	UnbondingEndsAtTick uint64    `json:"unbonding_ends_at_tick"`
}

func NewAssetUnstakedEvent(
	stakerAddress string, assetIDs []uint64, unstakedAtTick, unbondingEndsAtTick uint64,
) AssetUnstakedEvent {
	return AssetUnstakedEvent{
		EventType:           AssetUnstakedEventType,
		EventID:             uuid.NewString(),
		StakerAddress:       stakerAddress,
		AssetIDs:            assetIDs,
		UnstakedAtTick:      unstakedAtTick,
		UnbondingEndsAtTick: unbondingEndsAtTick,
	}
}

type AssetWithdrawnEvent struct {
	EventType            EventType `json:"event_type"` // always 3
	EventID              string    `json:"event_id"`
	StakerAddress        string    `json:"staker_address"`
	AssetIDs             []uint64  `json:"asset_ids"`
	WithdrawnAtTick      uint64    `json:"withdrawn_at_tick"`
	SettlementEndsAtTick uint64    `json:"settlement_ends_at_tick"`
}

func NewAssetWithdrawnEvent(
	stakerAddress string, assetIDs []uint64, withdrawnAtTick, settlementEndsAtTick uint64,
) AssetWithdrawnEvent {
	return AssetWithdrawnEvent{
		EventType:            AssetWithdrawnEventType,
		EventID:              uuid.NewString(),
		StakerAddress:        stakerAddress,
		AssetIDs:             assetIDs,
		WithdrawnAtTick:      withdrawnAtTick,
		SettlementEndsAtTick: settlementEndsAtTick,
	}
}

type RewardsClaimedEvent struct {
	EventType     EventType `json:"event_type"` // always 4
	EventID       string    `json:"event_id"`
	StakerAddress string    `json:"staker_address"`
	AssetIDs      []uint64  `json:"asset_ids"`
	RewardAmount  uint64    `json:"reward_amount"`
	ClaimedAtTick uint64    `json:"claimed_at_tick"`
}

func NewRewardsClaimedEvent(
	stakerAddress string, assetIDs []uint64, rewardAmount, claimedAtTick uint64,
) RewardsClaimedEvent {
	return RewardsClaimedEvent{
		EventType:     RewardsClaimedEventType,
		EventID:       uuid.NewString(),
		StakerAddress: stakerAddress,
		AssetIDs:      assetIDs,
		RewardAmount:  rewardAmount,
		ClaimedAtTick: claimedAtTick,
	}
}

type RewardRateUpdatedEvent struct {
	EventType EventType `json:"event_type"` // always 5
	EventID   string    `json:"event_id"`
	OldRate   uint64    `json:"old_rate"`
	NewRate   uint64    `json:"new_rate"`
}

func NewRewardRateUpdatedEvent(oldRate, newRate uint64) RewardRateUpdatedEvent {
	return RewardRateUpdatedEvent{
		EventType: RewardRateUpdatedEventType,
		EventID:   uuid.NewString(),
		OldRate:   oldRate,
		NewRate:   newRate,
	}
}
