package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"mechanic_payroll/models"
)

type MemberDAO interface {
	Create(ctx context.Context, member *models.Member) error
	GetByID(ctx context.Context, id uint) (*models.Member, error)
	// List returns members ordered by id. An empty role matches every member;
	// otherwise the role is compared case-insensitively.
	List(ctx context.Context, role string) ([]models.Member, error)
}

type memberDAO struct {
	db *gorm.DB
}

func NewMemberDAO(db *gorm.DB) MemberDAO {
	return &memberDAO{db: db}
}

func (d *memberDAO) Create(ctx context.Context, member *models.Member) error {
	return d.db.WithContext(ctx).Create(member).Error
}

func (d *memberDAO) GetByID(ctx context.Context, id uint) (*models.Member, error) {
	var member models.Member
	err := d.db.WithContext(ctx).Where("id = ?", id).Take(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (d *memberDAO) List(ctx context.Context, role string) ([]models.Member, error) {
	query := d.db.WithContext(ctx).Model(&models.Member{})
	if role != "" {
		query = query.Where("UPPER(role) = UPPER(?)", role)
	}

	members := []models.Member{}
	if err := query.Order("id").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
