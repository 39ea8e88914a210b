package recordsRepo

import (
	"context"
	"fmt"
	"sync"

	"casexpert/models"
	"casexpert/utils"

	"go.uber.org/zap"
)

// Store holds the in-memory snapshot and writes every mutation through to
// its backend. Mutations are all-or-nothing: the live snapshot is replaced
// only after the backend accepted the new state.
type Store struct {
	mu      sync.RWMutex
	data    *models.Snapshot
	backend SnapshotBackend
	logger  *zap.Logger
}

// NewStore loads the initial snapshot from backend.
func NewStore(ctx context.Context, backend SnapshotBackend, logger *zap.Logger) (*Store, error) {
	snap, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load records from %s: %w", backend.Name(), err)
	}
	if snap == nil {
		snap = &models.Snapshot{}
	}
	snap.Normalize()
	logger.Info("record store loaded",
		zap.String("backend", backend.Name()),
		zap.Int("cases", len(snap.Cases)),
		zap.Int("lawyers", len(snap.Lawyers)),
		zap.Int("users", len(snap.Users)))
	return &Store{data: snap, backend: backend, logger: logger}, nil
}

// View runs fn against the live snapshot under the read lock. fn must not
// modify the snapshot or retain references into it.
func (s *Store) View(fn func(snap *models.Snapshot)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.data)
}

// Mutate applies fn to a copy of the snapshot and persists it. If fn or the
// save fails the live snapshot is left untouched and the error is returned.
func (s *Store) Mutate(ctx context.Context, fn func(snap *models.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	if err := fn(next); err != nil {
		return err
	}
	next.Normalize()
	if err := s.backend.Save(ctx, next); err != nil {
		s.logger.Error("failed to persist records", zap.String("backend", s.backend.Name()), zap.Error(err))
		return utils.WrapError(utils.KindInternal, "failed to persist records", err)
	}
	s.data = next
	return nil
}

// Ping checks the backend.
func (s *Store) Ping(ctx context.Context) error {
	return s.backend.Ping(ctx)
}

func (s *Store) BackendName() string {
	return s.backend.Name()
}
