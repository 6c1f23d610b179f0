package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/ayushbridge/ayushbridge/internal/domain"
	"github.com/ayushbridge/ayushbridge/internal/rbac"
)

// UserService serves sanitized account views: the caller's own profile and
// the doctor-only patient/doctor directories.
type UserService struct {
	userRepo UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo UserRepository, log *zap.Logger) *UserService {
	return &UserService{userRepo: userRepo, log: log}
}

// Profile returns the caller's own account, sanitized.
func (s *UserService) Profile(ctx context.Context, caller domain.Claims) (*domain.SanitizedUser, error) {
	if err := rbac.Authorize(caller, rbac.ResourceOwnProfile, caller.UserID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	sanitized := user.Sanitized()
	return &sanitized, nil
}

// ListPatients returns every patient account, sanitized. Doctors only.
func (s *UserService) ListPatients(ctx context.Context, caller domain.Claims) ([]domain.SanitizedUser, error) {
	return s.listByRole(ctx, caller, rbac.ResourceListPatients, domain.RolePatient)
}

// ListDoctors returns every doctor account, sanitized. Doctors only.
func (s *UserService) ListDoctors(ctx context.Context, caller domain.Claims) ([]domain.SanitizedUser, error) {
	return s.listByRole(ctx, caller, rbac.ResourceListDoctors, domain.RoleDoctor)
}

func (s *UserService) listByRole(ctx context.Context, caller domain.Claims, resource rbac.Resource, role domain.Role) ([]domain.SanitizedUser, error) {
	if err := rbac.Authorize(caller, resource, ""); err != nil {
		return nil, err
	}

	users, err := s.userRepo.ListByRole(ctx, role)
	if err != nil {
		return nil, err
	}

	sanitized := make([]domain.SanitizedUser, 0, len(users))
	for i := range users {
		sanitized = append(sanitized, users[i].Sanitized())
	}
	return sanitized, nil
}
