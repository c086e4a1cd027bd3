// File: services/datasync/port.go
package datasync

import (
	"context"

	remoteRepo "attendly/database/repository/remote"
	"attendly/models"
)

// SyncPort is the uniform load/save/remove surface over one store. The local
// and remote stores both satisfy it, so the coordinator treats them alike.
type SyncPort interface {
	Load(ctx context.Context, kind models.AggregateKind) ([]byte, bool, error)
	Save(ctx context.Context, kind models.AggregateKind, payload []byte) error
	Remove(ctx context.Context, kind models.AggregateKind) error
}

// remotePort binds a RemoteStore to a single identity.
type remotePort struct {
	store  remoteRepo.RemoteStore
	userID string
}

// NewRemotePort scopes store to userID.
func NewRemotePort(store remoteRepo.RemoteStore, userID string) SyncPort {
	return &remotePort{store: store, userID: userID}
}

func (p *remotePort) Load(ctx context.Context, kind models.AggregateKind) ([]byte, bool, error) {
	return p.store.GetAggregate(ctx, p.userID, kind)
}

func (p *remotePort) Save(ctx context.Context, kind models.AggregateKind, payload []byte) error {
	return p.store.PutAggregate(ctx, p.userID, kind, payload)
}

func (p *remotePort) Remove(ctx context.Context, kind models.AggregateKind) error {
	return p.store.DeleteAggregate(ctx, p.userID, kind)
}
