package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/relicvault/staking-ledger-service/internal/db/model"
)

// SaveStakedAssets inserts one record per staked asset, updates the stats
// counters and runs the escrow callback, all inside a single transaction.
// The records only become visible once every custody transfer succeeded.
func (db *Database) SaveStakedAssets(
	ctx context.Context, stakerAddress string, assetIDs []uint64, stakedAtTick uint64,
	escrow func(ctx context.Context) error,
) error {
	transactionWork := func(sessCtx mongo.SessionContext) (interface{}, error) {
		client := db.Client.Database(db.DbName).Collection(model.StakedAssetCollection)
		stakerStatsClient := db.Client.Database(db.DbName).Collection(model.StakerStatsCollection)

		documents := make([]interface{}, 0, len(assetIDs))
		for _, assetID := range assetIDs {
			documents = append(documents, model.NewStakedAssetDocument(assetID, stakerAddress, stakedAtTick))
		}

		if _, err := client.InsertMany(sessCtx, documents); err != nil {
			if key, ok := duplicateAssetID(err, assetIDs); ok {
				return nil, &DuplicateKeyError{
					Key:     key,
					Message: "asset is already staked",
				}
			}
			return nil, err
		}

		// The staker stats doc is read first to detect a first-time staker,
		// same transaction so the read is consistent with the upsert below.
		newStaker := false
		var stakerStats model.StakerStatsDocument
		stakerErr := stakerStatsClient.FindOne(sessCtx, bson.M{"_id": stakerAddress}).Decode(&stakerStats)
		if stakerErr != nil {
			if !errors.Is(stakerErr, mongo.ErrNoDocuments) {
				return nil, stakerErr
			}
			newStaker = true
		}

		stakerInc := bson.M{
			"active_assets":       int64(len(assetIDs)),
			"total_staked_assets": int64(len(assetIDs)),
		}
		if err := db.incrementStakerStats(sessCtx, stakerAddress, stakerInc); err != nil {
			return nil, err
		}

		overallInc := bson.M{
			"active_assets":       int64(len(assetIDs)),
			"total_staked_assets": int64(len(assetIDs)),
		}
		if newStaker {
			overallInc["total_stakers"] = 1
		}
		if err := db.incrementOverallStats(sessCtx, overallInc); err != nil {
			return nil, err
		}

		// Custody moves last, the commit only happens after every transfer
		// succeeded.
		if err := escrow(sessCtx); err != nil {
			return nil, err
		}

		return nil, nil
	}

	_, txErr := db.txWithRetries(ctx, transactionWork)
	return txErr
}

func duplicateAssetID(err error, assetIDs []uint64) (string, bool) {
	if !mongo.IsDuplicateKeyError(err) {
		return "", false
	}
	var bulkErr mongo.BulkWriteException
	if errors.As(err, &bulkErr) && len(bulkErr.WriteErrors) > 0 {
		idx := bulkErr.WriteErrors[0].Index
		if idx >= 0 && idx < len(assetIDs) {
			return fmt.Sprint(assetIDs[idx]), true
		}
	}
	return "", true
}

func (db *Database) FindStakedAssetsByIDs(ctx context.Context, assetIDs []uint64) ([]model.StakedAssetDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.StakedAssetCollection)

	filter := bson.M{"_id": bson.M{"$in": assetIDs}}
	cursor, err := client.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assets []model.StakedAssetDocument
	if err = cursor.All(ctx, &assets); err != nil {
		return nil, err
	}

	return assets, nil
}

func (db *Database) FindStakedAssetsByStaker(
	ctx context.Context, stakerAddress string, paginationToken string,
) (*DbResultMap[model.StakedAssetDocument], error) {
	client := db.Client.Database(db.DbName).Collection(model.StakedAssetCollection)

	filter := bson.M{"staker_address": stakerAddress}
	opts := options.Find().
		SetSort(bson.D{{Key: "staked_at_tick", Value: -1}, {Key: "_id", Value: 1}}).
		SetLimit(db.cfg.MaxPaginationLimit)

	if paginationToken != "" {
		decodedToken, err := model.DecodePaginationToken[model.StakedAssetByStakerPagination](paginationToken)
		if err != nil {
			return nil, &InvalidPaginationTokenError{
				Message: "Invalid pagination token",
			}
		}
		filter = bson.M{
			"staker_address": stakerAddress,
			"$or": []bson.M{
				{"staked_at_tick": bson.M{"$lt": decodedToken.StakedAtTick}},
				{"staked_at_tick": decodedToken.StakedAtTick, "_id": bson.M{"$gt": decodedToken.AssetID}},
			},
		}
	}

	cursor, err := client.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assets []model.StakedAssetDocument
	if err = cursor.All(ctx, &assets); err != nil {
		return nil, err
	}

	return toResultMapWithPaginationToken(db.cfg, assets, model.BuildStakedAssetByStakerPaginationToken)
}

// TransitionToUnbonding marks the assets as unstaked and appends them to the
// staker's pending set. Every update is guarded by the expected previous
// state, a miss aborts the whole transaction.
func (db *Database) TransitionToUnbonding(
	ctx context.Context, stakerAddress string, assetIDs []uint64,
	unstakedAtTick, unbondingEndsAtTick uint64,
) error {
	transactionWork := func(sessCtx mongo.SessionContext) (interface{}, error) {
		client := db.Client.Database(db.DbName).Collection(model.StakedAssetCollection)
		pendingClient := db.Client.Database(db.DbName).Collection(model.PendingSetCollection)

		for _, assetID := range assetIDs {
			filter := bson.M{
				"_id":            assetID,
				"staker_address": stakerAddress,
				"is_unstaked":    false,
			}
			update := bson.M{
				"$set": bson.M{
					"is_unstaked":            true,
					"unstaked_at_tick":       unstakedAtTick,
					"unbonding_ends_at_tick": unbondingEndsAtTick,
				},
			}
			result, err := client.UpdateOne(sessCtx, filter, update)
			if err != nil {
				return nil, err
			}
			if result.MatchedCount == 0 {
				return nil, &NotFoundError{
					Key:     fmt.Sprint(assetID),
					Message: "asset is not staked by this staker or was already unstaked",
				}
			}
		}

		pendingUpdate := bson.M{"$push": bson.M{"asset_ids": bson.M{"$each": assetIDs}}}
		if _, err := pendingClient.UpdateOne(
			sessCtx, bson.M{"_id": stakerAddress}, pendingUpdate, options.Update().SetUpsert(true),
		); err != nil {
			return nil, err
		}

		if err := db.incrementStakerStats(sessCtx, stakerAddress, bson.M{
			"active_assets": -int64(len(assetIDs)),
		}); err != nil {
			return nil, err
		}

		return nil, db.incrementOverallStats(sessCtx, bson.M{
			"active_assets":    -int64(len(assetIDs)),
			"unbonding_assets": int64(len(assetIDs)),
		})
	}

	_, txErr := db.txWithRetries(ctx, transactionWork)
	return txErr
}

// TransitionToWithdrawn marks the assets as withdrawn and runs the release
// callback returning custody to the staker. The pending set keeps the ids
// until settlement clears them.
func (db *Database) TransitionToWithdrawn(
	ctx context.Context, stakerAddress string, assetIDs []uint64, settlementEndsAtTick uint64,
	release func(ctx context.Context) error,
) error {
	transactionWork := func(sessCtx mongo.SessionContext) (interface{}, error) {
		client := db.Client.Database(db.DbName).Collection(model.StakedAssetCollection)

		for _, assetID := range assetIDs {
			filter := bson.M{
				"_id":            assetID,
				"staker_address": stakerAddress,
				"is_unstaked":    true,
				"is_withdrawn":   false,
			}
			update := bson.M{
				"$set": bson.M{
					"is_withdrawn":            true,
					"settlement_ends_at_tick": settlementEndsAtTick,
				},
			}
			result, err := client.UpdateOne(sessCtx, filter, update)
			if err != nil {
				return nil, err
			}
			if result.MatchedCount == 0 {
				return nil, &NotFoundError{
					Key:     fmt.Sprint(assetID),
					Message: "asset is not eligible for withdrawal",
				}
			}
		}

		if err := db.incrementOverallStats(sessCtx, bson.M{
			"unbonding_assets": -int64(len(assetIDs)),
			"withdrawn_assets": int64(len(assetIDs)),
		}); err != nil {
			return nil, err
		}

		if err := release(sessCtx); err != nil {
			return nil, err
		}

		return nil, nil
	}

	_, txErr := db.txWithRetries(ctx, transactionWork)
	return txErr
}

// SettleStakedAssets deletes the settled records, clears the consumed ids
// from the staker's pending set and runs the disburse callback. The deletes
// only commit after the reward transfer was confirmed.
func (db *Database) SettleStakedAssets(
	ctx context.Context, stakerAddress string, assetIDs []uint64, rewardAmount uint64,
	disburse func(ctx context.Context) error,
) error {
	transactionWork := func(sessCtx mongo.SessionContext) (interface{}, error) {
		client := db.Client.Database(db.DbName).Collection(model.StakedAssetCollection)
		pendingClient := db.Client.Database(db.DbName).Collection(model.PendingSetCollection)

		deleteResult, err := client.DeleteMany(sessCtx, bson.M{
			"_id":            bson.M{"$in": assetIDs},
			"staker_address": stakerAddress,
		})
		if err != nil {
			return nil, err
		}
		if deleteResult.DeletedCount != int64(len(assetIDs)) {
			return nil, &NotFoundError{
				Key:     stakerAddress,
				Message: "settlement set changed while settling",
			}
		}

		pull := bson.M{"$pull": bson.M{"asset_ids": bson.M{"$in": assetIDs}}}
		if _, err := pendingClient.UpdateOne(sessCtx, bson.M{"_id": stakerAddress}, pull); err != nil {
			return nil, err
		}
		// Drop the pending set doc entirely once it holds no ids.
		if _, err := pendingClient.DeleteOne(sessCtx, bson.M{
			"_id":       stakerAddress,
			"asset_ids": bson.M{"$size": 0},
		}); err != nil {
			return nil, err
		}

		if err := db.incrementStakerStats(sessCtx, stakerAddress, bson.M{
			"rewards_earned": int64(rewardAmount),
		}); err != nil {
			return nil, err
		}

		if err := db.incrementOverallStats(sessCtx, bson.M{
			"withdrawn_assets": -int64(len(assetIDs)),
			"settled_assets":   int64(len(assetIDs)),
			"rewards_paid":     int64(rewardAmount),
		}); err != nil {
			return nil, err
		}

		if err := disburse(sessCtx); err != nil {
			return nil, err
		}

		return nil, nil
	}

	_, txErr := db.txWithRetries(ctx, transactionWork)
	return txErr
}
