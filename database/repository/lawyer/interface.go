package lawyerRepo

import (
	"context"

	"casexpert/models"
)

// LawyerRepository defines methods for the lawyer directory.
type LawyerRepository interface {
	List(ctx context.Context) ([]models.Lawyer, error)
	GetByID(ctx context.Context, id string) (*models.Lawyer, error)
	Create(ctx context.Context, l models.Lawyer) error
	Update(ctx context.Context, id string, fn func(l *models.Lawyer) error) (*models.Lawyer, error)
	// Delete reports whether a record existed.
	Delete(ctx context.Context, id string) (bool, error)
}
