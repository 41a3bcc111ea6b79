package repository

import (
	"context"
	"fmt"

	"github.com/kleverretail/retail-cloud/internal/domain"
	"github.com/kleverretail/retail-cloud/internal/repository/dao"
)

var (
	ErrStaffNotFound       = dao.ErrStaffNotFound
	ErrStaffUsernameExists = dao.ErrStaffUsernameExists
)

type StaffDAO interface {
	Insert(ctx context.Context, staff dao.Staff) (dao.Staff, error)
	FindAll(ctx context.Context) ([]dao.Staff, error)
	FindByUsername(ctx context.Context, username string) (dao.Staff, error)
	Count(ctx context.Context) (int64, error)
}

type StaffRepository struct {
	dao StaffDAO
}

func NewStaffRepository(dao StaffDAO) *StaffRepository {
	return &StaffRepository{
		dao: dao,
	}
}

func (r *StaffRepository) Create(ctx context.Context, staff domain.Staff) (domain.Staff, error) {
	created, err := r.dao.Insert(ctx, dao.Staff{
		Username: staff.Username,
		Name:     staff.Name,
		Role:     staff.Role,
		Active:   staff.Active,
	})
	if err != nil {
		return domain.Staff{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *StaffRepository) FindAll(ctx context.Context) ([]domain.Staff, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	staff := make([]domain.Staff, len(found))
	for i, s := range found {
		staff[i] = r.daoToDomain(s)
	}

	return staff, nil
}

func (r *StaffRepository) FindByUsername(ctx context.Context, username string) (domain.Staff, error) {
	found, err := r.dao.FindByUsername(ctx, username)
	if err != nil {
		return domain.Staff{}, fmt.Errorf("r.dao.FindByUsername -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *StaffRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return count, nil
}

func (r *StaffRepository) daoToDomain(s dao.Staff) domain.Staff {
	return domain.Staff{
		ID:       s.ID,
		Username: s.Username,
		Name:     s.Name,
		Role:     s.Role,
		Active:   s.Active,
	}
}
