package service

import (
	"context"

	"github.com/draftmark/draftmark-backend/internal/domain"
	"github.com/draftmark/draftmark-backend/internal/repository"
	"github.com/draftmark/draftmark-backend/pkg/logger"
)

// ProvisioningService handles one-time system setup. First-admin assignment
// is a transactional compare-and-set on the singleton settings row, so two
// racing claims serialize on the row lock and exactly one wins.
type ProvisioningService interface {
	ClaimFirstAdmin(ctx context.Context, userID uint64) (bool, error)
	Status(ctx context.Context) (*domain.SystemSettings, error)
}

type provisioningService struct {
	users    repository.UserRepository
	settings repository.SettingsRepository
}

// NewProvisioningService creates a new ProvisioningService
func NewProvisioningService(users repository.UserRepository, settings repository.SettingsRepository) ProvisioningService {
	return &provisioningService{users: users, settings: settings}
}

func (s *provisioningService) ClaimFirstAdmin(ctx context.Context, userID uint64) (bool, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return false, err
	}

	won, err := s.settings.ClaimFirstAdmin(ctx, userID)
	if err != nil {
		return false, err
	}
	if won {
		logger.Info("first admin assigned: user %d", userID)
	}
	return won, nil
}

func (s *provisioningService) Status(ctx context.Context) (*domain.SystemSettings, error) {
	return s.settings.Get(ctx)
}
