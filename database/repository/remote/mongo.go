// File: database/repository/remote/mongo.go
package remoteRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"attendly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type aggregateDocument struct {
	UserID    string    `bson:"userId"`
	Kind      string    `bson:"kind"`
	Payload   string    `bson:"payload"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoStore keeps one document per (userId, kind) in the aggregates collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore binds the aggregates collection of database dbName.
func NewMongoStore(client *mongo.Client, dbName string) *MongoStore {
	return &MongoStore{
		client: client,
		coll:   client.Database(dbName).Collection("aggregates"),
	}
}

func (s *MongoStore) GetAggregate(ctx context.Context, userID string, kind models.AggregateKind) ([]byte, bool, error) {
	var doc aggregateDocument
	err := s.coll.FindOne(ctx, bson.M{"userId": userID, "kind": string(kind)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("mongo get %s: %w", kind, err)
	}
	return []byte(doc.Payload), true, nil
}

func (s *MongoStore) PutAggregate(ctx context.Context, userID string, kind models.AggregateKind, payload []byte) error {
	doc := aggregateDocument{
		UserID:    userID,
		Kind:      string(kind),
		Payload:   string(payload),
		UpdatedAt: time.Now().UTC(),
	}
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"userId": userID, "kind": string(kind)},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("mongo put %s: %w", kind, err)
	}
	return nil
}

func (s *MongoStore) DeleteAggregate(ctx context.Context, userID string, kind models.AggregateKind) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"userId": userID, "kind": string(kind)}); err != nil {
		return fmt.Errorf("mongo delete %s: %w", kind, err)
	}
	return nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// EnsureIndexes creates the unique (userId, kind) index.
func (s *MongoStore) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "kind", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("user_kind_idx"),
	})
	if err != nil {
		return fmt.Errorf("failed to create aggregate indexes: %w", err)
	}
	return nil
}
