package userRepo

import (
	"context"

	"casexpert/models"
)

// UserRepository defines methods for account data access.
type UserRepository interface {
	// GetByID retrieves a user by their unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by their email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// FindOrCreate returns the user with email, inserting newUser() if none
	// exists. Lookup and insert happen under one store lock.
	FindOrCreate(ctx context.Context, email string, newUser func() models.User) (*models.User, bool, error)
	// List returns every account in insertion order.
	List(ctx context.Context) ([]models.User, error)
	// Update applies fn to the stored user and persists the result.
	Update(ctx context.Context, id string, fn func(u *models.User) error) (*models.User, error)
}
