package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/relicvault/staking-ledger-service/internal/db/model"
)

// SaveUnpublishedEvent parks an event whose queue publish exhausted its
// retries so the replay script can push it later.
func (db *Database) SaveUnpublishedEvent(ctx context.Context, eventID, queueName, messageBody string) error {
	client := db.Client.Database(db.DbName).Collection(model.UnpublishedEventCollection)

	document := model.NewUnpublishedEventDocument(eventID, queueName, messageBody, time.Now().Unix())
	_, err := client.InsertOne(ctx, document)
	if err != nil {
		// The same event can be parked twice if publishing fails on a retry
		// of the surrounding request, keep the first copy.
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return err
	}
	return nil
}

func (db *Database) FindUnpublishedEvents(ctx context.Context) ([]model.UnpublishedEventDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.UnpublishedEventCollection)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := client.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []model.UnpublishedEventDocument
	if err = cursor.All(ctx, &events); err != nil {
		return nil, err
	}

	return events, nil
}

func (db *Database) DeleteUnpublishedEvent(ctx context.Context, eventID string) error {
	client := db.Client.Database(db.DbName).Collection(model.UnpublishedEventCollection)

	_, err := client.DeleteOne(ctx, bson.M{"_id": eventID})
	return err
}
