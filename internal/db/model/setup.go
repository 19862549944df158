package model

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/relicvault/staking-ledger-service/internal/config"
)

const setupTimeout = 10 * time.Second

type index struct {
	// Keys is ordered, compound indexes depend on it.
	Keys   bson.D
	Unique bool
}

var collections = map[string][]index{
	LedgerParamsCollection: nil,
	OverallStatsCollection: nil,
	StakerStatsCollection: {
		{Keys: bson.D{{Key: "active_assets", Value: -1}}},
	},
	StakedAssetCollection: {
		{Keys: bson.D{{Key: "staker_address", Value: 1}, {Key: "staked_at_tick", Value: -1}}},
		{Keys: bson.D{{Key: "is_unstaked", Value: 1}, {Key: "is_withdrawn", Value: 1}}},
	},
	PendingSetCollection: nil,
	UnpublishedEventCollection: {
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
	},
}

// Setup creates the collections and their indexes. Everything here is
// idempotent, re-running against an existing database is a no-op.
func Setup(ctx context.Context, cfg *config.Config) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Db.Address))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, setupTimeout)
	defer cancel()

	database := client.Database(cfg.Db.DbName)
	for name, indexes := range collections {
		createCollection(ctx, database, name)
		for _, idx := range indexes {
			createIndex(ctx, database, name, idx)
		}
	}

	log.Info().Msg("collections and indexes created")
	return nil
}

func createCollection(ctx context.Context, database *mongo.Database, collectionName string) {
	if err := database.CreateCollection(ctx, collectionName); err != nil {
		log.Debug().Err(err).Str("collection", collectionName).
			Msg("collection not created, it likely exists already")
		return
	}
	log.Debug().Str("collection", collectionName).Msg("collection created")
}

func createIndex(ctx context.Context, database *mongo.Database, collectionName string, idx index) {
	model := mongo.IndexModel{
		Keys:    idx.Keys,
		Options: options.Index().SetUnique(idx.Unique),
	}
	if _, err := database.Collection(collectionName).Indexes().CreateOne(ctx, model); err != nil {
		log.Debug().Err(err).Str("collection", collectionName).Msg("failed to create index")
		return
	}
	log.Debug().Str("collection", collectionName).Msg("index created")
}
