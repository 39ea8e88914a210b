// Package lawyer manages the lawyer directory.
package lawyer

import (
	"context"

	lawyerRepo "casexpert/database/repository/lawyer"
	"casexpert/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LawyerService interface {
	List(ctx context.Context) ([]models.Lawyer, error)
	Get(ctx context.Context, id string) (*models.Lawyer, error)
	Create(ctx context.Context, in models.LawyerInput) (*models.Lawyer, error)
	Patch(ctx context.Context, id string, patch models.LawyerPatch) (*models.Lawyer, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type DefaultLawyerService struct {
	Repo   lawyerRepo.LawyerRepository
	Logger *zap.Logger
}

func NewLawyerService(repo lawyerRepo.LawyerRepository, logger *zap.Logger) *DefaultLawyerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultLawyerService{Repo: repo, Logger: logger}
}

func (s *DefaultLawyerService) List(ctx context.Context) ([]models.Lawyer, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultLawyerService) Get(ctx context.Context, id string) (*models.Lawyer, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultLawyerService) Create(ctx context.Context, in models.LawyerInput) (*models.Lawyer, error) {
	l := models.Lawyer{
		ID:        uuid.NewString(),
		Name:      "Unnamed Lawyer",
		Expertise: []string{},
	}
	if in.Name != nil && *in.Name != "" {
		l.Name = *in.Name
	}
	if in.Expertise != nil {
		l.Expertise = append([]string{}, in.Expertise...)
	}
	if in.Rating != nil {
		l.Rating = *in.Rating
	}
	if in.City != nil {
		l.City = *in.City
	}
	if err := s.Repo.Create(ctx, l); err != nil {
		return nil, err
	}
	s.Logger.Info("lawyer created", zap.String("lawyerID", l.ID))
	return &l, nil
}

func (s *DefaultLawyerService) Patch(ctx context.Context, id string, patch models.LawyerPatch) (*models.Lawyer, error) {
	return s.Repo.Update(ctx, id, func(l *models.Lawyer) error {
		if patch.Name != nil {
			l.Name = *patch.Name
		}
		if patch.Expertise != nil {
			l.Expertise = append([]string{}, (*patch.Expertise)...)
		}
		if patch.Rating != nil {
			l.Rating = *patch.Rating
		}
		if patch.City != nil {
			l.City = *patch.City
		}
		return nil
	})
}

// Delete leaves cases and accounts that reference the lawyer untouched.
func (s *DefaultLawyerService) Delete(ctx context.Context, id string) (bool, error) {
	return s.Repo.Delete(ctx, id)
}
