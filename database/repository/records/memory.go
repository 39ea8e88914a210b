package recordsRepo

import (
	"context"
	"sync"

	"casexpert/models"
)

// MemorySnapshotBackend keeps the last saved snapshot in process. Nothing
// survives a restart.
type MemorySnapshotBackend struct {
	mu   sync.Mutex
	snap *models.Snapshot
}

func NewMemorySnapshotBackend(initial *models.Snapshot) *MemorySnapshotBackend {
	if initial == nil {
		initial = &models.Snapshot{}
	}
	return &MemorySnapshotBackend{snap: initial.Clone()}
}

func (b *MemorySnapshotBackend) Name() string { return "memory" }

func (b *MemorySnapshotBackend) Load(ctx context.Context) (*models.Snapshot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snap.Clone(), nil
}

func (b *MemorySnapshotBackend) Save(ctx context.Context, snap *models.Snapshot) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.snap = snap.Clone()
	return nil
}

func (b *MemorySnapshotBackend) Ping(ctx context.Context) error { return nil }
