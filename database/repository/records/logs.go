package recordsRepo

import (
	"context"

	"casexpert/models"
)

type snapshotLogRepo struct {
	store *Store
}

func NewQueryLogRepo(store *Store) QueryLogRepository {
	return &snapshotLogRepo{store: store}
}

func (r *snapshotLogRepo) Append(ctx context.Context, entry models.LogEntry) error {
	return r.store.Mutate(ctx, func(snap *models.Snapshot) error {
		snap.Logs = append(snap.Logs, entry)
		return nil
	})
}

func (r *snapshotLogRepo) List(ctx context.Context) ([]models.LogEntry, error) {
	var out []models.LogEntry
	r.store.View(func(snap *models.Snapshot) {
		out = append([]models.LogEntry{}, snap.Logs...)
	})
	return out, nil
}
