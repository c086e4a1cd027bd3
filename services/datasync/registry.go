package datasync

import (
	"context"
	"sync"

	kvRepo "attendly/database/repository/kv"
	localRepo "attendly/database/repository/local"
	remoteRepo "attendly/database/repository/remote"

	"go.uber.org/zap"
)

// Registry hands out one Coordinator per identity. Local aggregates of each
// identity live under their own key prefix in the shared key/value store.
type Registry struct {
	kv     kvRepo.KeyValueStore
	remote remoteRepo.RemoteStore
	logger *zap.Logger

	mu       sync.Mutex
	sessions map[string]*Coordinator
	detached sync.WaitGroup
}

// NewRegistry builds a registry over kv and remote. A nil remote keeps every
// identity local-only.
func NewRegistry(kv kvRepo.KeyValueStore, remote remoteRepo.RemoteStore, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		kv:       kv,
		remote:   remote,
		logger:   logger,
		sessions: make(map[string]*Coordinator),
	}
}

// LocalPrefix is the key namespace of userID in the local store.
func LocalPrefix(userID string) string {
	return "u:" + userID + ":"
}

// Session returns the coordinator of userID, creating it on first use.
func (r *Registry) Session(userID string) *Coordinator {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.sessions[userID]; ok {
		return c
	}
	var remote SyncPort
	if r.remote != nil {
		remote = NewRemotePort(r.remote, userID)
	}
	c := NewCoordinator(userID, localRepo.NewLocalStore(r.kv, LocalPrefix(userID)), remote, r.logger)
	r.sessions[userID] = c
	return c
}

// Login runs the pull-on-login for userID.
func (r *Registry) Login(ctx context.Context, userID string) PullReport {
	return r.Session(userID).Login(ctx)
}

// Logout clears the local aggregates of userID and forgets its coordinator.
// Pushes already scheduled still complete.
func (r *Registry) Logout(ctx context.Context, userID string) error {
	c := r.Session(userID)
	if err := c.Clear(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	delete(r.sessions, userID)
	r.mu.Unlock()

	r.detached.Add(1)
	go func() {
		defer r.detached.Done()
		c.Wait()
	}()
	return nil
}

// Wait blocks until every coordinator, including logged-out ones, has no
// pushes in flight.
func (r *Registry) Wait() {
	r.mu.Lock()
	sessions := make([]*Coordinator, 0, len(r.sessions))
	for _, c := range r.sessions {
		sessions = append(sessions, c)
	}
	r.mu.Unlock()
	for _, c := range sessions {
		c.Wait()
	}
	r.detached.Wait()
}

// Shutdown waits like Wait but gives up when ctx is done.
func (r *Registry) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
