// File: database/repository/local/store.go
package localRepo

import (
	"context"
	"fmt"

	kvRepo "attendly/database/repository/kv"
	"attendly/models"
)

// LocalStore keeps each aggregate as one JSON document under its fixed
// logical key, optionally namespaced by a prefix.
type LocalStore struct {
	kv     kvRepo.KeyValueStore
	prefix string
}

// NewLocalStore scopes kv with prefix. An empty prefix uses the bare logical keys.
func NewLocalStore(kv kvRepo.KeyValueStore, prefix string) *LocalStore {
	return &LocalStore{kv: kv, prefix: prefix}
}

// Key is the full key under which kind is stored.
func (s *LocalStore) Key(kind models.AggregateKind) string {
	return s.prefix + kind.LocalKey()
}

func (s *LocalStore) Load(_ context.Context, kind models.AggregateKind) ([]byte, bool, error) {
	if !kind.Valid() {
		return nil, false, fmt.Errorf("unknown aggregate %q", kind)
	}
	v, ok, err := s.kv.Get(s.Key(kind))
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	return []byte(v), true, nil
}

func (s *LocalStore) Save(_ context.Context, kind models.AggregateKind, payload []byte) error {
	if !kind.Valid() {
		return fmt.Errorf("unknown aggregate %q", kind)
	}
	return s.kv.Set(s.Key(kind), string(payload))
}

func (s *LocalStore) Remove(_ context.Context, kind models.AggregateKind) error {
	if !kind.Valid() {
		return fmt.Errorf("unknown aggregate %q", kind)
	}
	return s.kv.Remove(s.Key(kind))
}
