package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"mechanic_payroll/models"
)

type AdminDAO interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	Count(ctx context.Context) (int64, error)
}

type adminDAO struct {
	db *gorm.DB
}

func NewAdminDAO(db *gorm.DB) AdminDAO {
	return &adminDAO{db: db}
}

func (d *adminDAO) Create(ctx context.Context, admin *models.Admin) error {
	err := d.db.WithContext(ctx).Create(admin).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func (d *adminDAO) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	err := d.db.WithContext(ctx).Where("username = ?", username).Take(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (d *adminDAO) Count(ctx context.Context) (int64, error) {
	var n int64
	err := d.db.WithContext(ctx).Model(&models.Admin{}).Count(&n).Error
	return n, err
}
