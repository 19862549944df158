package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/relicvault/staking-ledger-service/internal/db/model"
)

func (db *Database) FindPendingSet(ctx context.Context, stakerAddress string) (*model.PendingSetDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.PendingSetCollection)

	var pendingSet model.PendingSetDocument
	err := client.FindOne(ctx, bson.M{"_id": stakerAddress}).Decode(&pendingSet)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     stakerAddress,
				Message: "no pending set found for staker",
			}
		}
		return nil, err
	}
	return &pendingSet, nil
}
