package model

const PendingSetCollection = "pending_sets"

// PendingSetDocument tracks, per staker, the asset ids that have entered
// unbonding and have not been settled yet. Withdraw acts on this set and
// claim clears the settled ids from it.
type PendingSetDocument struct {
	StakerAddress string   `bson:"_id"`
	AssetIDs      []uint64 `bson:"asset_ids"`
}
