package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Staff struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"size:64;uniqueIndex;not null"`
	Name     string `gorm:"size:128;not null"`
	Role     string `gorm:"size:32;not null"`
	Active   bool   `gorm:"not null"`
}

func (Staff) TableName() string {
	return "staff"
}

type StaffDAO struct {
	db *gorm.DB
}

func NewStaffDAO(db *gorm.DB) *StaffDAO {
	return &StaffDAO{
		db: db,
	}
}

func (d *StaffDAO) Insert(ctx context.Context, staff Staff) (Staff, error) {
	result := d.db.WithContext(ctx).Create(&staff)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return Staff{}, ErrStaffUsernameExists
		}

		return Staff{}, result.Error
	}

	return staff, nil
}

func (d *StaffDAO) FindAll(ctx context.Context) ([]Staff, error) {
	var staff []Staff

	result := d.db.WithContext(ctx).Order("id ASC").Find(&staff)
	if result.Error != nil {
		return nil, result.Error
	}

	return staff, nil
}

func (d *StaffDAO) FindByUsername(ctx context.Context, username string) (Staff, error) {
	var staff Staff

	result := d.db.WithContext(ctx).First(&staff, "username = ?", username)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Staff{}, ErrStaffNotFound
		}

		return Staff{}, result.Error
	}

	return staff, nil
}

func (d *StaffDAO) Count(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Staff{}).Count(&count)

	return count, result.Error
}
