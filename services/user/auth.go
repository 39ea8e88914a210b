package user

import (
	"context"
	"errors"
	"strings"

	"casexpert/models"
	"casexpert/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Login finds or creates the account for email and issues a new session
// token. Unknown emails become standard users named after the local part.
func (s *DefaultUserService) Login(ctx context.Context, email string) (*models.LoginResponse, error) {
	if email == "" {
		return nil, utils.NewError(utils.KindInvalidInput, "email is required")
	}

	u, created, err := s.Repo.FindOrCreate(ctx, email, func() models.User {
		return models.User{
			ID:    uuid.NewString(),
			Email: email,
			Name:  strings.SplitN(email, "@", 2)[0],
			Role:  models.RoleUser,
		}
	})
	if err != nil {
		return nil, err
	}
	if created {
		s.Logger.Info("Login: created account", zap.String("userID", u.ID))
	}

	token, err := s.Sessions.Create(ctx, u.Email, u.Role)
	if err != nil {
		s.Logger.Error("Login: failed to create session", zap.Error(err))
		return nil, utils.WrapError(utils.KindInternal, "failed to create session", err)
	}
	return &models.LoginResponse{Token: token, User: *u}, nil
}

func (s *DefaultUserService) Logout(ctx context.Context, token string) error {
	return s.Sessions.Revoke(ctx, token)
}

// Authenticate trusts the session only for the email. Role and lawyer
// binding come from the current user record so admin edits apply at once.
func (s *DefaultUserService) Authenticate(ctx context.Context, token string) (*models.Caller, error) {
	sess, err := s.Sessions.Resolve(ctx, token)
	if errors.Is(err, utils.ErrUnauthorized) {
		return nil, utils.ErrUnauthorized
	}
	if err != nil {
		return nil, utils.WrapError(utils.KindInternal, "failed to resolve session", err)
	}

	u, err := s.Repo.GetByEmail(ctx, sess.Email)
	if err != nil {
		return nil, utils.ErrUnauthorized
	}
	return &models.Caller{UserID: u.ID, Email: u.Email, Role: u.Role, LawyerID: u.LawyerID}, nil
}

func (s *DefaultUserService) Me(ctx context.Context, caller models.Caller) (*models.User, error) {
	u, err := s.Repo.GetByEmail(ctx, caller.Email)
	if err != nil {
		return nil, utils.ErrUnauthorized
	}
	return u, nil
}
