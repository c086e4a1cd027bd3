// File: database/repository/remote/firestore.go
package remoteRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"attendly/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore keeps aggregates at users/{uid}/data/{kind}. Each document
// holds the aggregate under one field plus an updatedAt timestamp.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore wraps a Firestore client obtained from the Firebase app.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) doc(userID string, kind models.AggregateKind) *firestore.DocumentRef {
	return s.client.Collection("users").Doc(userID).Collection("data").Doc(string(kind))
}

func (s *FirestoreStore) GetAggregate(ctx context.Context, userID string, kind models.AggregateKind) ([]byte, bool, error) {
	snap, err := s.doc(userID, kind).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("firestore get %s: %w", kind, err)
	}
	value, ok := snap.Data()[kind.DocumentField()]
	if !ok || value == nil {
		return nil, false, nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return nil, false, fmt.Errorf("firestore encode %s: %w", kind, err)
	}
	return payload, true, nil
}

func (s *FirestoreStore) PutAggregate(ctx context.Context, userID string, kind models.AggregateKind, payload []byte) error {
	var value interface{}
	if err := json.Unmarshal(payload, &value); err != nil {
		return fmt.Errorf("firestore decode %s: %w", kind, err)
	}
	_, err := s.doc(userID, kind).Set(ctx, map[string]interface{}{
		kind.DocumentField(): value,
		"updatedAt":          time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("firestore put %s: %w", kind, err)
	}
	return nil
}

func (s *FirestoreStore) DeleteAggregate(ctx context.Context, userID string, kind models.AggregateKind) error {
	if _, err := s.doc(userID, kind).Delete(ctx); err != nil {
		return fmt.Errorf("firestore delete %s: %w", kind, err)
	}
	return nil
}

// Ping reads a sentinel document; a missing document still proves connectivity.
func (s *FirestoreStore) Ping(ctx context.Context) error {
	_, err := s.client.Collection("health").Doc("ping").Get(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		return err
	}
	return nil
}
