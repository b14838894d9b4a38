package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"placement-backend/internal/store"
)

const slotCollection = "slots"

// slotDoc is one persisted slot: the raw JSON of a whole collection (or
// a preference value) keyed by slot name. The snapshot is always exactly
// the last value written; there is no versioning or migration.
type slotDoc struct {
	ID        string    `bson:"_id"`
	Data      string    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// SlotRepository is the Mongo-backed implementation of
// store.SlotRepository.
type SlotRepository struct {
	db *mongo.Database
}

func NewSlotRepository(db *mongo.Database) *SlotRepository {
	return &SlotRepository{db: db}
}

func (r *SlotRepository) LoadSlot(ctx context.Context, key string) ([]byte, error) {
	var doc slotDoc
	err := r.db.Collection(slotCollection).FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrSlotNotFound
		}
		return nil, err
	}
	return []byte(doc.Data), nil
}

func (r *SlotRepository) SaveSlot(ctx context.Context, key string, raw []byte) error {
	_, err := r.db.Collection(slotCollection).UpdateOne(
		ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"data": string(raw), "updated_at": time.Now().UTC()}},
		options.UpdateOne().SetUpsert(true),
	)
	return err
}
