package recordsRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"casexpert/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const snapshotDocumentID = "casexpert"

type snapshotDocument struct {
	ID              string    `bson:"_id"`
	models.Snapshot `bson:",inline"`
	UpdatedAt       time.Time `bson:"updatedAt"`
}

// MongoSnapshotBackend stores the snapshot as one document in the "records" collection.
type MongoSnapshotBackend struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func NewMongoSnapshotBackend(client *mongo.Client, dbName string) *MongoSnapshotBackend {
	return &MongoSnapshotBackend{
		client: client,
		coll:   client.Database(dbName).Collection("records"),
	}
}

func (b *MongoSnapshotBackend) Name() string { return "mongo" }

func (b *MongoSnapshotBackend) Load(ctx context.Context) (*models.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var doc snapshotDocument
	err := b.coll.FindOne(ctx, bson.M{"_id": snapshotDocumentID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &models.Snapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return &doc.Snapshot, nil
}

func (b *MongoSnapshotBackend) Save(ctx context.Context, snap *models.Snapshot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := snapshotDocument{ID: snapshotDocumentID, Snapshot: *snap, UpdatedAt: time.Now()}
	opts := options.Replace().SetUpsert(true)
	if _, err := b.coll.ReplaceOne(ctx, bson.M{"_id": snapshotDocumentID}, doc, opts); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

func (b *MongoSnapshotBackend) Ping(ctx context.Context) error {
	return b.client.Ping(ctx, nil)
}
