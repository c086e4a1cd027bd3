// File: database/repository/remote/interface.go
package remoteRepo

import (
	"context"

	"attendly/models"
)

// RemoteStore holds the four aggregates per identity as whole documents.
// Puts overwrite the whole document; there is no field-level patching.
type RemoteStore interface {
	GetAggregate(ctx context.Context, userID string, kind models.AggregateKind) ([]byte, bool, error)
	PutAggregate(ctx context.Context, userID string, kind models.AggregateKind, payload []byte) error
	DeleteAggregate(ctx context.Context, userID string, kind models.AggregateKind) error
	Ping(ctx context.Context) error
}
