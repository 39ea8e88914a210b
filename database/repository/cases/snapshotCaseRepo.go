// File: database/repository/cases/snapshotCaseRepo.go
package casesRepo

import (
	"context"

	recordsRepo "casexpert/database/repository/records"
	"casexpert/models"
	"casexpert/utils"
)

type SnapshotCaseRepo struct {
	store *recordsRepo.Store
}

func NewSnapshotCaseRepo(store *recordsRepo.Store) *SnapshotCaseRepo {
	return &SnapshotCaseRepo{store: store}
}

func (r *SnapshotCaseRepo) List(ctx context.Context) ([]models.Case, error) {
	var out []models.Case
	r.store.View(func(snap *models.Snapshot) {
		out = make([]models.Case, len(snap.Cases))
		for i, c := range snap.Cases {
			out[i] = c.Clone()
		}
	})
	return out, nil
}

func (r *SnapshotCaseRepo) GetByID(ctx context.Context, id string) (*models.Case, error) {
	var found *models.Case
	r.store.View(func(snap *models.Snapshot) {
		for _, c := range snap.Cases {
			if c.ID == id {
				c = c.Clone()
				found = &c
				return
			}
		}
	})
	if found == nil {
		return nil, utils.ErrNotFound
	}
	return found, nil
}

func (r *SnapshotCaseRepo) Create(ctx context.Context, c models.Case) error {
	return r.store.Mutate(ctx, func(snap *models.Snapshot) error {
		snap.Cases = append(snap.Cases, c.Clone())
		return nil
	})
}

func (r *SnapshotCaseRepo) Update(ctx context.Context, id string, fn func(c *models.Case) error) (*models.Case, error) {
	var updated *models.Case
	err := r.store.Mutate(ctx, func(snap *models.Snapshot) error {
		for i := range snap.Cases {
			if snap.Cases[i].ID != id {
				continue
			}
			if err := fn(&snap.Cases[i]); err != nil {
				return err
			}
			c := snap.Cases[i].Clone()
			updated = &c
			return nil
		}
		return utils.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *SnapshotCaseRepo) Delete(ctx context.Context, id string, guard func(c models.Case) error) (bool, error) {
	existed := false
	err := r.store.Mutate(ctx, func(snap *models.Snapshot) error {
		for i, c := range snap.Cases {
			if c.ID != id {
				continue
			}
			if guard != nil {
				if err := guard(c); err != nil {
					return err
				}
			}
			snap.Cases = append(snap.Cases[:i], snap.Cases[i+1:]...)
			existed = true
			return nil
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return existed, nil
}
