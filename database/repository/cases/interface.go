package casesRepo

import (
	"context"

	"casexpert/models"
)

// CaseRepository defines methods for case data access. Guards passed to
// Update and Delete run inside the store lock, so a check and the write it
// protects see the same record.
type CaseRepository interface {
	List(ctx context.Context) ([]models.Case, error)
	GetByID(ctx context.Context, id string) (*models.Case, error)
	Create(ctx context.Context, c models.Case) error
	// Update applies fn to the stored case; fn returning an error aborts the write.
	Update(ctx context.Context, id string, fn func(c *models.Case) error) (*models.Case, error)
	// Delete removes the case if guard allows it. It reports whether a record existed.
	Delete(ctx context.Context, id string, guard func(c models.Case) error) (bool, error)
}
