package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureSlotIndexes keeps the slots collection queryable by freshness;
// slot identity itself rides on _id so no unique index is needed there.
func EnsureSlotIndexes(db *mongo.Database) error {
	_, err := db.Collection("slots").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "updated_at", Value: -1}},
			Options: options.Index().SetName("slots_updated_at"),
		},
	)
	return err
}
