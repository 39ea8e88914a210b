// File: database/repository/lawyer/snapshotLawyerRepo.go
package lawyerRepo

import (
	"context"

	recordsRepo "casexpert/database/repository/records"
	"casexpert/models"
	"casexpert/utils"
)

type SnapshotLawyerRepo struct {
	store *recordsRepo.Store
}

func NewSnapshotLawyerRepo(store *recordsRepo.Store) *SnapshotLawyerRepo {
	return &SnapshotLawyerRepo{store: store}
}

func cloneLawyer(l models.Lawyer) models.Lawyer {
	l.Expertise = append([]string{}, l.Expertise...)
	return l
}

func (r *SnapshotLawyerRepo) List(ctx context.Context) ([]models.Lawyer, error) {
	var out []models.Lawyer
	r.store.View(func(snap *models.Snapshot) {
		out = make([]models.Lawyer, len(snap.Lawyers))
		for i, l := range snap.Lawyers {
			out[i] = cloneLawyer(l)
		}
	})
	return out, nil
}

func (r *SnapshotLawyerRepo) GetByID(ctx context.Context, id string) (*models.Lawyer, error) {
	var found *models.Lawyer
	r.store.View(func(snap *models.Snapshot) {
		for _, l := range snap.Lawyers {
			if l.ID == id {
				l = cloneLawyer(l)
				found = &l
				return
			}
		}
	})
	if found == nil {
		return nil, utils.ErrNotFound
	}
	return found, nil
}

func (r *SnapshotLawyerRepo) Create(ctx context.Context, l models.Lawyer) error {
	return r.store.Mutate(ctx, func(snap *models.Snapshot) error {
		snap.Lawyers = append(snap.Lawyers, cloneLawyer(l))
		return nil
	})
}

func (r *SnapshotLawyerRepo) Update(ctx context.Context, id string, fn func(l *models.Lawyer) error) (*models.Lawyer, error) {
	var updated *models.Lawyer
	err := r.store.Mutate(ctx, func(snap *models.Snapshot) error {
		for i := range snap.Lawyers {
			if snap.Lawyers[i].ID != id {
				continue
			}
			if err := fn(&snap.Lawyers[i]); err != nil {
				return err
			}
			l := cloneLawyer(snap.Lawyers[i])
			updated = &l
			return nil
		}
		return utils.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *SnapshotLawyerRepo) Delete(ctx context.Context, id string) (bool, error) {
	existed := false
	err := r.store.Mutate(ctx, func(snap *models.Snapshot) error {
		for i, l := range snap.Lawyers {
			if l.ID == id {
				snap.Lawyers = append(snap.Lawyers[:i], snap.Lawyers[i+1:]...)
				existed = true
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return existed, nil
}
