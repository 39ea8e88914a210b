package cases

import (
	"context"
	"errors"

	"casexpert/models"
	"casexpert/services/access"
	"casexpert/services/search"
	"casexpert/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func orDefault(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}

func (s *DefaultCaseService) Create(ctx context.Context, caller *models.Caller, in models.CaseInput) (*models.Case, error) {
	clientEmail := orDefault(in.ClientEmail, "")

	if s.strict() {
		if caller == nil {
			return nil, utils.ErrUnauthorized
		}
		if !access.CanCreate(*caller, clientEmail) {
			return nil, utils.NewError(utils.KindForbidden, "not allowed to open this case")
		}
		if caller.Role == models.RoleUser {
			clientEmail = caller.Email
		}
	}

	attachments := in.Attachments
	if attachments == nil {
		attachments = []string{}
	}
	c := models.Case{
		ID:          uuid.NewString(),
		Title:       orDefault(in.Title, models.DefaultCaseTitle),
		Status:      orDefault(in.Status, models.DefaultCaseStatus),
		Description: orDefault(in.Description, ""),
		ClientEmail: clientEmail,
		LawyerID:    orDefault(in.LawyerID, ""),
		Attachments: append([]string{}, attachments...),
		CreatedAt:   s.Now().UnixMilli(),
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.Logger.Info("case created", zap.String("caseID", c.ID), zap.String("lawyerID", c.LawyerID))
	return &c, nil
}

func (s *DefaultCaseService) Get(ctx context.Context, caller *models.Caller, id string) (*models.Case, error) {
	if s.strict() && caller == nil {
		return nil, utils.ErrUnauthorized
	}
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.strict() && !access.CanView(*caller, *c) {
		return nil, utils.ErrNotFound
	}
	return c, nil
}

func (s *DefaultCaseService) List(ctx context.Context, caller *models.Caller) ([]models.Case, error) {
	if caller == nil {
		return nil, utils.ErrUnauthorized
	}
	all, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return access.Visible(*caller, all), nil
}

func (s *DefaultCaseService) Patch(ctx context.Context, caller *models.Caller, id string, patch models.CasePatch) (*models.Case, error) {
	if s.strict() && caller == nil {
		return nil, utils.ErrUnauthorized
	}
	fields := patch.Fields()
	updated, err := s.Repo.Update(ctx, id, func(c *models.Case) error {
		if s.strict() {
			if !access.CanView(*caller, *c) {
				return utils.ErrNotFound
			}
			if !access.CanMutate(*caller, *c, fields) {
				return utils.NewError(utils.KindForbidden, "not allowed to change these fields")
			}
		}
		patch.Apply(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Logger.Info("case updated", zap.String("caseID", id), zap.Strings("fields", fields))
	return updated, nil
}

func (s *DefaultCaseService) Delete(ctx context.Context, caller *models.Caller, id string) (bool, error) {
	if s.strict() && caller == nil {
		return false, utils.ErrUnauthorized
	}
	var guard func(models.Case) error
	if s.strict() {
		guard = func(c models.Case) error {
			if !access.CanView(*caller, c) {
				return utils.ErrNotFound
			}
			if !access.CanDelete(*caller, c) {
				return utils.NewError(utils.KindForbidden, "not allowed to delete this case")
			}
			return nil
		}
	}
	existed, err := s.Repo.Delete(ctx, id, guard)
	if errors.Is(err, utils.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if existed {
		s.Logger.Info("case deleted", zap.String("caseID", id))
	}
	return existed, nil
}

func (s *DefaultCaseService) Search(ctx context.Context, caller *models.Caller, query string) ([]models.Case, error) {
	if s.strict() && caller == nil {
		return nil, utils.ErrUnauthorized
	}
	all, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.strict() {
		all = access.Visible(*caller, all)
	}
	hits := search.Match(query, all)
	out := make([]models.Case, len(hits))
	for i, h := range hits {
		out[i] = h.Case
	}
	return out, nil
}
