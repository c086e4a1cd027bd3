package datasync

import (
	"context"
	"testing"
	"time"

	kvRepo "attendly/database/repository/kv"
	remoteRepo "attendly/database/repository/remote"
	"attendly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrySessionsAreIsolated(t *testing.T) {
	reg := NewRegistry(kvRepo.NewMemoryStore(), remoteRepo.NewMemoryStore(), nil)

	alice := reg.Session("alice")
	assert.Same(t, alice, reg.Session("alice"))

	require.NoError(t, alice.SaveSubjects([]models.Subject{{ID: "s1", Name: "Maths", Type: models.SubjectTheory}}))
	assert.Len(t, subjectsOf(t, alice), 1)
	assert.Empty(t, subjectsOf(t, reg.Session("bob")))
	reg.Wait()
}

func TestRegistryLogoutThenLoginRestoresFromRemote(t *testing.T) {
	ctx := context.Background()
	kv := kvRepo.NewMemoryStore()
	reg := NewRegistry(kv, remoteRepo.NewMemoryStore(), nil)

	require.NoError(t, reg.Session("alice").SaveRecords([]models.AttendanceRecord{models.NewHolidayRecord("2025-03-03", "")}))
	reg.Wait()

	require.NoError(t, reg.Logout(ctx, "alice"))
	assert.Zero(t, kv.Len())

	fresh := reg.Session("alice")
	assert.Empty(t, recordsOf(t, fresh))

	report := reg.Login(ctx, "alice")
	assert.Contains(t, report.Pulled, models.KindAttendance)
	assert.Len(t, recordsOf(t, fresh), 1)
}

func TestRegistryShutdownHonorsContext(t *testing.T) {
	reg := NewRegistry(kvRepo.NewMemoryStore(), nil, nil)
	require.NoError(t, reg.Session("alice").SaveSubjects(nil))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, reg.Shutdown(ctx))
}
