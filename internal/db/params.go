package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/relicvault/staking-ledger-service/internal/db/model"
)

// InitLedgerParams writes the singleton params document. A duplicate key
// means a previous boot already initialized the ledger, the caller is
// expected to fall back to GetLedgerParams and compare.
func (db *Database) InitLedgerParams(ctx context.Context, params *model.LedgerParamsDocument) error {
	client := db.Client.Database(db.DbName).Collection(model.LedgerParamsCollection)

	_, err := client.InsertOne(ctx, params)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &DuplicateKeyError{
				Key:     params.Id,
				Message: "ledger params already initialized",
			}
		}
		return err
	}
	return nil
}

func (db *Database) GetLedgerParams(ctx context.Context) (*model.LedgerParamsDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.LedgerParamsCollection)

	var params model.LedgerParamsDocument
	err := client.FindOne(ctx, bson.M{"_id": model.LedgerParamsDocumentID}).Decode(&params)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     model.LedgerParamsDocumentID,
				Message: "ledger params not initialized",
			}
		}
		return nil, err
	}
	return &params, nil
}

// UpdateRewardRate persists a new reward rate. The filter carries the rate
// the caller observed so concurrent updates cannot silently overwrite each
// other.
func (db *Database) UpdateRewardRate(ctx context.Context, currentRate, newRate uint64) error {
	client := db.Client.Database(db.DbName).Collection(model.LedgerParamsCollection)

	filter := bson.M{
		"_id":                  model.LedgerParamsDocumentID,
		"reward_rate_per_tick": currentRate,
	}
	update := bson.M{"$set": bson.M{"reward_rate_per_tick": newRate}}

	result, err := client.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &NotFoundError{
			Key:     model.LedgerParamsDocumentID,
			Message: "ledger params missing or reward rate changed concurrently",
		}
	}
	return nil
}

func (db *Database) SetPaused(ctx context.Context, paused bool) error {
	client := db.Client.Database(db.DbName).Collection(model.LedgerParamsCollection)

	result, err := client.UpdateOne(
		ctx,
		bson.M{"_id": model.LedgerParamsDocumentID},
		bson.M{"$set": bson.M{"paused": paused}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &NotFoundError{
			Key:     model.LedgerParamsDocumentID,
			Message: "ledger params not initialized",
		}
	}
	return nil
}
