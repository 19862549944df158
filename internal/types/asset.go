package types

// AssetState is the lifecycle position of a staked asset as seen by API
// consumers. It is derived from the stored flags and the current tick, it is
// never persisted.
type AssetState string

const (
	// Asset is in custody and accruing rewards.
	Staked AssetState = "staked"
	// Unstake was requested and the unbonding window has not elapsed yet.
	Unbonding AssetState = "unbonding"
	// Unbonding window elapsed, the asset is waiting for a withdraw call.
	Withdrawable AssetState = "withdrawable"
	// Asset was returned to the staker, the settlement window is still open.
	SettlementPending AssetState = "settlement_pending"
	// Settlement window elapsed, rewards can be claimed.
	Claimable AssetState = "claimable"
)

func (s AssetState) ToString() string {
	return string(s)
}

// DeriveAssetState computes the lifecycle state of an asset record at the
// given tick. Window checks use strict inequality, a window that ends at tick
// N elapses at tick N+1.
func DeriveAssetState(
	isUnstaked, isWithdrawn bool,
	unbondingEndsAtTick, settlementEndsAtTick, currentTick uint64,
) AssetState {
	if !isUnstaked {
		return Staked
	}
	if !isWithdrawn {
		if currentTick > unbondingEndsAtTick {
			return Withdrawable
		}
		return Unbonding
	}
	if currentTick > settlementEndsAtTick {
		return Claimable
	}
	return SettlementPending
}
