package user

import (
	"context"

	userRepo "casexpert/database/repository/user"
	"casexpert/models"
	"casexpert/services/session"

	"go.uber.org/zap"
)

type UserService interface {
	// Authentication
	Login(ctx context.Context, email string) (*models.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	// Authenticate resolves a bearer token into the caller's current identity.
	Authenticate(ctx context.Context, token string) (*models.Caller, error)
	Me(ctx context.Context, caller models.Caller) (*models.User, error)

	// Admin
	GetAllUsers(ctx context.Context) ([]models.User, error)
	PatchUser(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Sessions session.Store
	Logger   *zap.Logger
}

func NewUserService(repo userRepo.UserRepository, sessions session.Store, logger *zap.Logger) *DefaultUserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultUserService{Repo: repo, Sessions: sessions, Logger: logger}
}
