// Package snapshot persists the full application state as a single JSON
// blob under a fixed storage key. The core never blocks on it: writes are
// debounced and happen off the mutation path.
package snapshot

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/logger"
	"budgetwise/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is the snapshots table row: one serialized AppState per key.
type Record struct {
	StorageKey string    `gorm:"primaryKey;column:storage_key"`
	Payload    string    `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName maps Record to the snapshots table.
func (Record) TableName() string { return "snapshots" }

// Store reads and writes state snapshots.
type Store struct {
	db  *gorm.DB
	key string
}

// NewStore creates a snapshot store bound to one storage key.
func NewStore(db *gorm.DB, key string) *Store {
	return &Store{db: db, key: key}
}

// Load reads and decodes the stored state. Returns (state, false, nil) with
// an empty state when no snapshot exists yet. A blob that fails to decode
// is reported as SNAPSHOT_CORRUPT and must leave the caller's in-memory
// state untouched.
func (s *Store) Load() (models.AppState, bool, error) {
	var rec Record
	err := s.db.First(&rec, "storage_key = ?", s.key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewAppState(), false, nil
	}
	if err != nil {
		return models.NewAppState(), false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	state := models.NewAppState()
	if err := json.Unmarshal([]byte(rec.Payload), &state); err != nil {
		return models.NewAppState(), false, apperrors.Wrap(apperrors.ErrSnapshotCorrupt, err)
	}
	return state, true, nil
}

// Save encodes and upserts the state under the storage key.
func (s *Store) Save(state models.AppState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	rec := Record{StorageKey: s.key, Payload: string(payload), UpdatedAt: time.Now()}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Saver debounces snapshot writes: mutations call MarkDirty, and one write
// lands after the configured quiet period. Flush forces a pending write
// through, e.g. on shutdown.
type Saver struct {
	store    *Store
	state    func() models.AppState
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewSaver creates a debounced writer over the given snapshot store.
// state supplies a copy of the current application state at write time.
func NewSaver(store *Store, state func() models.AppState, debounce time.Duration) *Saver {
	return &Saver{store: store, state: state, debounce: debounce}
}

// MarkDirty schedules a write after the debounce window, restarting the
// window if one is already pending.
func (s *Saver) MarkDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.write)
}

// Flush writes immediately and cancels any pending timer.
func (s *Saver) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.write()
}

func (s *Saver) write() {
	if err := s.store.Save(s.state()); err != nil {
		logger.Get().Errorw("snapshot write failed", "error", err)
	}
}
