package user

import (
	"context"

	"casexpert/models"
	"casexpert/utils"

	"go.uber.org/zap"
)

func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.List(ctx)
}

// PatchUser merges name, role and lawyerId into the account. The email is
// the login key and cannot change.
func (s *DefaultUserService) PatchUser(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	if patch.Role != nil && !patch.Role.Valid() {
		return nil, utils.NewError(utils.KindInvalidInput, "role must be one of user, lawyer, admin")
	}
	u, err := s.Repo.Update(ctx, id, func(u *models.User) error {
		if patch.Name != nil {
			u.Name = *patch.Name
		}
		if patch.Role != nil {
			u.Role = *patch.Role
		}
		if patch.LawyerID != nil {
			u.LawyerID = *patch.LawyerID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Logger.Info("PatchUser: account updated", zap.String("userID", id), zap.String("role", string(u.Role)))
	return u, nil
}
