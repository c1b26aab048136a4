package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/stocklane/inventory-system/internal/core/domain"
	"github.com/stocklane/inventory-system/internal/core/ports"
)

// UserService implements the user administration use cases. The role checks
// here are the real enforcement point; the panel's menu filtering is only a
// courtesy to the operator.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) ChangeRole(ctx context.Context, actingRole, targetID, role string) (*domain.User, error) {
	if actingRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	updated, err := s.repo.UpdateRole(ctx, targetID, role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", targetID).Str("role", role).Msg("user role changed")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, actingRole, actingID, targetID string) error {
	if actingRole != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	if actingID == targetID {
		return domain.ErrSelfDelete
	}

	if err := s.repo.Delete(ctx, targetID); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", targetID).Msg("user deleted")
	return nil
}
