// File: services/datasync/coordinator.go
package datasync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"attendly/models"

	"go.uber.org/zap"
)

// ErrLocalUnavailable marks a local store read or write that failed outright,
// as opposed to an absent or unreadable aggregate.
var ErrLocalUnavailable = errors.New("local store unavailable")

// PullReport summarizes a login pull, one entry per aggregate kind.
type PullReport struct {
	Pulled  []models.AggregateKind `json:"pulled"`
	Cleared []models.AggregateKind `json:"cleared"`
	Failed  []models.AggregateKind `json:"failed"`
}

// Coordinator owns the local and remote ports of one identity. Reads and
// writes go to the local port synchronously; every write is then mirrored to
// the remote port as a whole-document overwrite in the background.
//
// Lock and Unlock serialize read-modify-write sequences of callers sharing
// the coordinator; Login, Clear and Import take the lock themselves.
type Coordinator struct {
	userID string
	local  SyncPort
	remote SyncPort
	logger *zap.Logger

	mutation sync.Mutex

	mu        sync.Mutex
	seq       map[models.AggregateKind]uint64
	attempted map[models.AggregateKind]uint64
	pushMu    map[models.AggregateKind]*sync.Mutex
	pending   sync.WaitGroup
}

// NewCoordinator binds local and remote for userID. A nil remote disables mirroring.
func NewCoordinator(userID string, local, remote SyncPort, logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Coordinator{
		userID:    userID,
		local:     local,
		remote:    remote,
		logger:    logger.With(zap.String("userID", userID)),
		seq:       make(map[models.AggregateKind]uint64),
		attempted: make(map[models.AggregateKind]uint64),
		pushMu:    make(map[models.AggregateKind]*sync.Mutex),
	}
	for _, kind := range models.AggregateKinds {
		c.pushMu[kind] = &sync.Mutex{}
	}
	return c
}

// UserID is the identity this coordinator is scoped to.
func (c *Coordinator) UserID() string { return c.userID }

func (c *Coordinator) Lock()   { c.mutation.Lock() }
func (c *Coordinator) Unlock() { c.mutation.Unlock() }

// load reads one aggregate. A store failure is returned so callers never
// mistake it for an empty aggregate and overwrite real data with defaults.
func (c *Coordinator) load(kind models.AggregateKind) ([]byte, bool, error) {
	payload, ok, err := c.local.Load(context.Background(), kind)
	if err != nil {
		c.logger.Error("Local read failed", zap.String("kind", string(kind)), zap.Error(err))
		return nil, false, fmt.Errorf("%w: read %s: %w", ErrLocalUnavailable, kind, err)
	}
	return payload, ok, nil
}

func (c *Coordinator) parseFailed(kind models.AggregateKind, err error) {
	c.logger.Warn("Stored aggregate is unreadable, using default",
		zap.String("kind", string(kind)), zap.Error(err))
}

func (c *Coordinator) Settings() (models.Settings, error) {
	payload, ok, err := c.load(models.KindSettings)
	if err != nil {
		return models.Settings{}, err
	}
	if !ok {
		return models.DefaultSettings(), nil
	}
	s, err := decodeSettings(payload)
	if err != nil {
		c.parseFailed(models.KindSettings, err)
	}
	return s, nil
}

func (c *Coordinator) Subjects() ([]models.Subject, error) {
	payload, ok, err := c.load(models.KindSubjects)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Subject{}, nil
	}
	list, err := decodeSubjects(payload)
	if err != nil {
		c.parseFailed(models.KindSubjects, err)
	}
	return list, nil
}

func (c *Coordinator) Timetable() (models.Timetable, error) {
	payload, ok, err := c.load(models.KindTimetable)
	if err != nil {
		return nil, err
	}
	if !ok {
		return models.Timetable{}, nil
	}
	week, err := decodeTimetable(payload)
	if err != nil {
		c.parseFailed(models.KindTimetable, err)
	}
	return week, nil
}

func (c *Coordinator) Records() ([]models.AttendanceRecord, error) {
	payload, ok, err := c.load(models.KindAttendance)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.AttendanceRecord{}, nil
	}
	records, err := decodeRecords(payload)
	if err != nil {
		c.parseFailed(models.KindAttendance, err)
	}
	return records, nil
}

func (c *Coordinator) SaveSettings(s models.Settings) error {
	return c.write(models.KindSettings, s)
}

func (c *Coordinator) SaveSubjects(list []models.Subject) error {
	if list == nil {
		list = []models.Subject{}
	}
	return c.write(models.KindSubjects, list)
}

func (c *Coordinator) SaveTimetable(week models.Timetable) error {
	if week == nil {
		week = models.Timetable{}
	}
	return c.write(models.KindTimetable, week)
}

func (c *Coordinator) SaveRecords(records []models.AttendanceRecord) error {
	if records == nil {
		records = []models.AttendanceRecord{}
	}
	return c.write(models.KindAttendance, records)
}

// write replaces the local aggregate and schedules the remote overwrite.
// Nothing is pushed when the local write fails.
func (c *Coordinator) write(kind models.AggregateKind, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", kind, err)
	}
	if err := c.local.Save(context.Background(), kind, payload); err != nil {
		c.logger.Error("Local write failed", zap.String("kind", string(kind)), zap.Error(err))
		return fmt.Errorf("%w: write %s: %w", ErrLocalUnavailable, kind, err)
	}
	c.push(kind, payload)
	return nil
}

// push mirrors payload to the remote port without blocking the caller.
func (c *Coordinator) push(kind models.AggregateKind, payload []byte) {
	if c.remote == nil {
		return
	}
	c.mu.Lock()
	c.seq[kind]++
	n := c.seq[kind]
	c.mu.Unlock()

	c.pending.Add(1)
	go func() {
		defer c.pending.Done()
		c.deliver(kind, n, payload)
	}()
}

// deliver sends push n of kind. Once any push has been attempted, older ones
// are dropped whether or not that attempt succeeded, so the remote copy
// never regresses to an older local write.
func (c *Coordinator) deliver(kind models.AggregateKind, n uint64, payload []byte) {
	lock := c.pushMu[kind]
	lock.Lock()
	defer lock.Unlock()

	c.mu.Lock()
	if n < c.attempted[kind] {
		c.mu.Unlock()
		c.logger.Debug("Skipping superseded push", zap.String("kind", string(kind)))
		return
	}
	c.attempted[kind] = n
	c.mu.Unlock()

	if err := c.remote.Save(context.Background(), kind, payload); err != nil {
		c.logger.Warn("Remote push failed", zap.String("kind", string(kind)), zap.Error(err))
	}
}

// Wait blocks until every scheduled push has finished.
func (c *Coordinator) Wait() {
	c.pending.Wait()
}

// Login pulls all four remote aggregates and overwrites the local copies.
// An aggregate absent remotely is removed locally; a failed read keeps the
// local copy.
func (c *Coordinator) Login(ctx context.Context) PullReport {
	report := PullReport{
		Pulled:  []models.AggregateKind{},
		Cleared: []models.AggregateKind{},
		Failed:  []models.AggregateKind{},
	}
	if c.remote == nil {
		return report
	}
	c.Lock()
	defer c.Unlock()
	for _, kind := range models.AggregateKinds {
		payload, ok, err := c.remote.Load(ctx, kind)
		if err != nil {
			c.logger.Warn("Remote pull failed, keeping local copy",
				zap.String("kind", string(kind)), zap.Error(err))
			report.Failed = append(report.Failed, kind)
			continue
		}
		if !ok {
			if err := c.local.Remove(ctx, kind); err != nil {
				c.logger.Error("Local remove failed", zap.String("kind", string(kind)), zap.Error(err))
				report.Failed = append(report.Failed, kind)
				continue
			}
			report.Cleared = append(report.Cleared, kind)
			continue
		}
		if err := c.local.Save(ctx, kind, payload); err != nil {
			c.logger.Error("Local write failed", zap.String("kind", string(kind)), zap.Error(err))
			report.Failed = append(report.Failed, kind)
			continue
		}
		report.Pulled = append(report.Pulled, kind)
	}
	c.logger.Info("Pulled remote aggregates",
		zap.Int("pulled", len(report.Pulled)),
		zap.Int("cleared", len(report.Cleared)),
		zap.Int("failed", len(report.Failed)))
	return report
}

// Clear removes every local aggregate. Remote copies are left untouched.
func (c *Coordinator) Clear(ctx context.Context) error {
	c.Lock()
	defer c.Unlock()
	for _, kind := range models.AggregateKinds {
		if err := c.local.Remove(ctx, kind); err != nil {
			return fmt.Errorf("failed to clear %s: %w", kind, err)
		}
	}
	return nil
}

// Export returns every aggregate as currently held locally.
func (c *Coordinator) Export() (models.Snapshot, error) {
	settings, err := c.Settings()
	if err != nil {
		return models.Snapshot{}, err
	}
	subjects, err := c.Subjects()
	if err != nil {
		return models.Snapshot{}, err
	}
	week, err := c.Timetable()
	if err != nil {
		return models.Snapshot{}, err
	}
	records, err := c.Records()
	if err != nil {
		return models.Snapshot{}, err
	}
	return models.Snapshot{
		Settings:   &settings,
		Subjects:   subjects,
		Timetable:  week,
		Attendance: records,
	}, nil
}

// Import writes every aggregate present in snap and returns the kinds
// written. It stops at the first failed local write.
func (c *Coordinator) Import(snap models.Snapshot) ([]models.AggregateKind, error) {
	c.Lock()
	defer c.Unlock()
	written := []models.AggregateKind{}
	if snap.Settings != nil {
		if err := c.SaveSettings(snap.Settings.Normalized()); err != nil {
			return written, err
		}
		written = append(written, models.KindSettings)
	}
	if snap.Subjects != nil {
		if err := c.SaveSubjects(snap.Subjects); err != nil {
			return written, err
		}
		written = append(written, models.KindSubjects)
	}
	if snap.Timetable != nil {
		if err := c.SaveTimetable(snap.Timetable); err != nil {
			return written, err
		}
		written = append(written, models.KindTimetable)
	}
	if snap.Attendance != nil {
		if err := c.SaveRecords(snap.Attendance); err != nil {
			return written, err
		}
		written = append(written, models.KindAttendance)
	}
	return written, nil
}
