package cases

import (
	"context"
	"time"

	casesRepo "casexpert/database/repository/cases"
	"casexpert/models"

	"go.uber.org/zap"
)

// Mode selects how strictly case routes are guarded.
type Mode string

const (
	// ModeStrict requires a session everywhere and applies the access policy
	// to reads, writes and search.
	ModeStrict Mode = "strict"
	// ModeLegacy only guards List; everything else is open.
	ModeLegacy Mode = "legacy"
)

// CaseService is the case lifecycle. A nil caller means the request carried
// no valid session.
type CaseService interface {
	Create(ctx context.Context, caller *models.Caller, in models.CaseInput) (*models.Case, error)
	Get(ctx context.Context, caller *models.Caller, id string) (*models.Case, error)
	List(ctx context.Context, caller *models.Caller) ([]models.Case, error)
	Patch(ctx context.Context, caller *models.Caller, id string, patch models.CasePatch) (*models.Case, error)
	Delete(ctx context.Context, caller *models.Caller, id string) (bool, error)
	Search(ctx context.Context, caller *models.Caller, query string) ([]models.Case, error)
}

// DefaultCaseService is the production implementation.
type DefaultCaseService struct {
	Repo   casesRepo.CaseRepository
	Mode   Mode
	Logger *zap.Logger
	Now    func() time.Time
}

func NewCaseService(repo casesRepo.CaseRepository, mode Mode, logger *zap.Logger) *DefaultCaseService {
	if mode != ModeLegacy {
		mode = ModeStrict
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultCaseService{Repo: repo, Mode: mode, Logger: logger, Now: time.Now}
}

func (s *DefaultCaseService) strict() bool {
	return s.Mode != ModeLegacy
}
