package db

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/relicvault/staking-ledger-service/internal/db/model"
)

// Generate the id for the overall stats document.
// Id is a random number ranges from 0 to LogicalShardCount-1 represented as a string
func (db *Database) generateOverallStatsId() string {
	return fmt.Sprint(rand.Intn(int(db.cfg.LogicalShardCount)))
}

// incrementOverallStats applies the given counter deltas to one randomly
// picked logical shard of the overall stats document. Spreading the writes
// across shards keeps the hot document from serializing writers.
func (db *Database) incrementOverallStats(ctx context.Context, increments bson.M) error {
	client := db.Client.Database(db.DbName).Collection(model.OverallStatsCollection)

	shardId := db.generateOverallStatsId()
	upsertUpdate := bson.M{"$inc": increments}
	_, err := client.UpdateOne(
		ctx, bson.M{"_id": shardId}, upsertUpdate, options.Update().SetUpsert(true),
	)
	return err
}

func (db *Database) incrementStakerStats(ctx context.Context, stakerAddress string, increments bson.M) error {
	client := db.Client.Database(db.DbName).Collection(model.StakerStatsCollection)

	upsertUpdate := bson.M{"$inc": increments}
	_, err := client.UpdateOne(
		ctx, bson.M{"_id": stakerAddress}, upsertUpdate, options.Update().SetUpsert(true),
	)
	return err
}

// GetOverallStats fetches all logical shards of the overall stats document
// and sums them into a single view.
func (db *Database) GetOverallStats(ctx context.Context) (*model.OverallStatsDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.OverallStatsCollection)

	cursor, err := client.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var shards []model.OverallStatsDocument
	if err = cursor.All(ctx, &shards); err != nil {
		return nil, err
	}

	var overallStats model.OverallStatsDocument
	for _, shard := range shards {
		overallStats.ActiveAssets += shard.ActiveAssets
		overallStats.UnbondingAssets += shard.UnbondingAssets
		overallStats.WithdrawnAssets += shard.WithdrawnAssets
		overallStats.SettledAssets += shard.SettledAssets
		overallStats.TotalStakedAssets += shard.TotalStakedAssets
		overallStats.RewardsPaid += shard.RewardsPaid
		overallStats.TotalStakers += shard.TotalStakers
	}

	return &overallStats, nil
}

func (db *Database) FindStakerStats(ctx context.Context, stakerAddress string) (*model.StakerStatsDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.StakerStatsCollection)

	var stakerStats model.StakerStatsDocument
	err := client.FindOne(ctx, bson.M{"_id": stakerAddress}).Decode(&stakerStats)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     stakerAddress,
				Message: "staker stats not found",
			}
		}
		return nil, err
	}
	return &stakerStats, nil
}

// FindTopStakersByActiveAssets fetches staker stats ordered by the number of
// assets currently in custody, descending.
func (db *Database) FindTopStakersByActiveAssets(
	ctx context.Context, paginationToken string,
) (*DbResultMap[model.StakerStatsDocument], error) {
	client := db.Client.Database(db.DbName).Collection(model.StakerStatsCollection)

	filter := bson.M{}
	opts := options.Find().
		SetSort(bson.D{{Key: "active_assets", Value: -1}, {Key: "_id", Value: 1}}).
		SetLimit(db.cfg.MaxPaginationLimit)

	if paginationToken != "" {
		decodedToken, err := model.DecodePaginationToken[model.StakerStatsPagination](paginationToken)
		if err != nil {
			return nil, &InvalidPaginationTokenError{
				Message: "Invalid pagination token",
			}
		}
		filter = bson.M{
			"$or": []bson.M{
				{"active_assets": bson.M{"$lt": decodedToken.ActiveAssets}},
				{"active_assets": decodedToken.ActiveAssets, "_id": bson.M{"$gt": decodedToken.StakerAddress}},
			},
		}
	}

	cursor, err := client.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stakerStats []model.StakerStatsDocument
	if err = cursor.All(ctx, &stakerStats); err != nil {
		return nil, err
	}

	return toResultMapWithPaginationToken(db.cfg, stakerStats, model.BuildStakerStatsPaginationToken)
}
