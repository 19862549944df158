package model

const StakedAssetCollection = "staked_assets"

// StakedAssetDocument is the ledger record for one asset in custody. The
// asset id is globally unique, so it doubles as the primary key.
// Lifecycle flags only ever move forward: is_unstaked is set once by an
// unstake, is_withdrawn once by a withdraw, and settlement deletes the
// document.
type StakedAssetDocument struct {
	AssetID              uint64 `bson:"_id"`
	StakerAddress        string `bson:"staker_address"`
	StakedAtTick         uint64 `bson:"staked_at_tick"`
	IsUnstaked           bool   `bson:"is_unstaked"`
	UnstakedAtTick       uint64 `bson:"unstaked_at_tick"`
	UnbondingEndsAtTick  uint64 `bson:"unbonding_ends_at_tick"`
	IsWithdrawn          bool   `bson:"is_withdrawn"`
	SettlementEndsAtTick uint64 `bson:"settlement_ends_at_tick"`
}

func NewStakedAssetDocument(assetID uint64, stakerAddress string, stakedAtTick uint64) *StakedAssetDocument {
	return &StakedAssetDocument{
		AssetID:       assetID,
		StakerAddress: stakerAddress,
		StakedAtTick:  stakedAtTick,
	}
}

// AccruedTicks is the custody duration the asset earns rewards for. It is
// only meaningful once the asset has been unstaked.
func (d *StakedAssetDocument) AccruedTicks() uint64 {
	if !d.IsUnstaked || d.UnbondingEndsAtTick < d.StakedAtTick {
		return 0
	}
	return d.UnbondingEndsAtTick - d.StakedAtTick
}

type StakedAssetByStakerPagination struct {
	StakedAtTick uint64 `json:"staked_at_tick"`
	AssetID      uint64 `json:"asset_id"`
}

func BuildStakedAssetByStakerPaginationToken(d StakedAssetDocument) (string, error) {
	page := StakedAssetByStakerPagination{
		StakedAtTick: d.StakedAtTick,
		AssetID:      d.AssetID,
	}
	return GetPaginationToken(page)
}
