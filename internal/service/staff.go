package service

import (
	"context"
	"fmt"

	"github.com/kleverretail/retail-cloud/internal/domain"
	"github.com/kleverretail/retail-cloud/internal/repository"
)

var (
	ErrStaffNotFound       = repository.ErrStaffNotFound
	ErrStaffUsernameExists = repository.ErrStaffUsernameExists
)

type StaffRepository interface {
	Create(ctx context.Context, staff domain.Staff) (domain.Staff, error)
	FindAll(ctx context.Context) ([]domain.Staff, error)
	FindByUsername(ctx context.Context, username string) (domain.Staff, error)
	Count(ctx context.Context) (int64, error)
}

type StaffService struct {
	repo StaffRepository
}

func NewStaffService(repo StaffRepository) *StaffService {
	return &StaffService{
		repo: repo,
	}
}

func (s *StaffService) ListStaff(ctx context.Context) ([]domain.Staff, error) {
	staff, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return staff, nil
}

func (s *StaffService) GetStaff(ctx context.Context, username string) (domain.Staff, error) {
	staff, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return domain.Staff{}, fmt.Errorf("s.repo.FindByUsername -> %w", err)
	}

	return staff, nil
}

// CreateStaff inserts an active staff member, defaulting the role to "staff".
func (s *StaffService) CreateStaff(ctx context.Context, staff domain.Staff) (domain.Staff, error) {
	if staff.Role == "" {
		staff.Role = domain.DefaultStaffRole
	}
	staff.Active = true

	created, err := s.repo.Create(ctx, staff)
	if err != nil {
		return domain.Staff{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}
