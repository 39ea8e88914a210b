package recordsRepo

import (
	"context"

	"casexpert/models"
)

// SnapshotBackend persists the whole record snapshot as one unit.
type SnapshotBackend interface {
	// Load returns the stored snapshot, or an empty one if nothing was saved yet.
	Load(ctx context.Context) (*models.Snapshot, error)
	// Save replaces the stored snapshot.
	Save(ctx context.Context, snap *models.Snapshot) error
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
	Name() string
}

// QueryLogRepository appends assistant and legal-search query logs.
type QueryLogRepository interface {
	Append(ctx context.Context, entry models.LogEntry) error
	List(ctx context.Context) ([]models.LogEntry, error)
}
