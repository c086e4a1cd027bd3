package localRepo

import (
	"context"
	"errors"
	"testing"

	kvRepo "attendly/database/repository/kv"
	"attendly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreKeys(t *testing.T) {
	assert.Equal(t, "attendance_records", NewLocalStore(kvRepo.NewMemoryStore(), "").Key(models.KindAttendance))
	assert.Equal(t, "u:42:attendance_settings_v2", NewLocalStore(kvRepo.NewMemoryStore(), "u:42:").Key(models.KindSettings))
}

func TestLocalStoreLoadSaveRemove(t *testing.T) {
	ctx := context.Background()
	kv := kvRepo.NewMemoryStore()
	alice := NewLocalStore(kv, "u:alice:")
	bob := NewLocalStore(kv, "u:bob:")

	_, ok, err := alice.Load(ctx, models.KindSubjects)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, alice.Save(ctx, models.KindSubjects, []byte(`[{"id":"s1"}]`)))
	payload, ok, err := alice.Load(ctx, models.KindSubjects)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":"s1"}]`, string(payload))

	_, ok, _ = bob.Load(ctx, models.KindSubjects)
	assert.False(t, ok)

	require.NoError(t, alice.Remove(ctx, models.KindSubjects))
	_, ok, _ = alice.Load(ctx, models.KindSubjects)
	assert.False(t, ok)

	assert.Error(t, alice.Save(ctx, "grades", []byte("{}")))
	_, _, err = alice.Load(ctx, "grades")
	assert.Error(t, err)
}

type brokenKV struct{ kvRepo.KeyValueStore }

func (brokenKV) Get(string) (string, bool, error) { return "", false, errors.New("i/o timeout") }

func TestLocalStoreLoadPropagatesReadErrors(t *testing.T) {
	store := NewLocalStore(brokenKV{kvRepo.NewMemoryStore()}, "u:alice:")
	_, ok, err := store.Load(context.Background(), models.KindAttendance)
	assert.Error(t, err)
	assert.False(t, ok)
}
