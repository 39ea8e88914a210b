// File: database/repository/user/snapshotUserRepo.go
package userRepo

import (
	"context"

	recordsRepo "casexpert/database/repository/records"
	"casexpert/models"
	"casexpert/utils"
)

// SnapshotUserRepo stores accounts in the shared record snapshot.
type SnapshotUserRepo struct {
	store *recordsRepo.Store
}

func NewSnapshotUserRepo(store *recordsRepo.Store) *SnapshotUserRepo {
	return &SnapshotUserRepo{store: store}
}

func (r *SnapshotUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	var found *models.User
	r.store.View(func(snap *models.Snapshot) {
		for _, u := range snap.Users {
			if u.ID == id {
				u := u
				found = &u
				return
			}
		}
	})
	if found == nil {
		return nil, utils.NewError(utils.KindNotFound, "user not found")
	}
	return found, nil
}

func (r *SnapshotUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var found *models.User
	r.store.View(func(snap *models.Snapshot) {
		found = findByEmail(snap, email)
	})
	if found == nil {
		return nil, utils.NewError(utils.KindNotFound, "user not found")
	}
	return found, nil
}

func (r *SnapshotUserRepo) FindOrCreate(ctx context.Context, email string, newUser func() models.User) (*models.User, bool, error) {
	// Fast path without the write lock.
	if existing, err := r.GetByEmail(ctx, email); err == nil {
		return existing, false, nil
	}

	var result *models.User
	created := false
	err := r.store.Mutate(ctx, func(snap *models.Snapshot) error {
		if existing := findByEmail(snap, email); existing != nil {
			result = existing
			return nil
		}
		u := newUser()
		snap.Users = append(snap.Users, u)
		result = &u
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return result, created, nil
}

func (r *SnapshotUserRepo) List(ctx context.Context) ([]models.User, error) {
	var out []models.User
	r.store.View(func(snap *models.Snapshot) {
		out = append([]models.User{}, snap.Users...)
	})
	return out, nil
}

func (r *SnapshotUserRepo) Update(ctx context.Context, id string, fn func(u *models.User) error) (*models.User, error) {
	var updated *models.User
	err := r.store.Mutate(ctx, func(snap *models.Snapshot) error {
		for i := range snap.Users {
			if snap.Users[i].ID != id {
				continue
			}
			if err := fn(&snap.Users[i]); err != nil {
				return err
			}
			u := snap.Users[i]
			updated = &u
			return nil
		}
		return utils.NewError(utils.KindNotFound, "user not found")
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func findByEmail(snap *models.Snapshot, email string) *models.User {
	for _, u := range snap.Users {
		if u.Email == email {
			u := u
			return &u
		}
	}
	return nil
}
