package dao

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"mechanic_payroll/models"
)

type EarningDAO interface {
	// Create inserts the earning after checking, in the same transaction,
	// that its member exists. Returns ErrNotFound for an unknown member.
	Create(ctx context.Context, earning *models.Earning) error
	// TotalForMember sums the member's earnings; 0 when there are none.
	TotalForMember(ctx context.Context, memberID uint) (float64, error)
	ListForMember(ctx context.Context, memberID uint) ([]models.Earning, error)
}

type earningDAO struct {
	db *gorm.DB
}

func NewEarningDAO(db *gorm.DB) EarningDAO {
	return &earningDAO{db: db}
}

func (d *earningDAO) Create(ctx context.Context, earning *models.Earning) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Member{}).Where("id = ?", earning.MemberID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return tx.Omit("Member").Create(earning).Error
	})
}

func (d *earningDAO) TotalForMember(ctx context.Context, memberID uint) (float64, error) {
	var total sql.NullFloat64
	err := d.db.WithContext(ctx).Model(&models.Earning{}).
		Select("SUM(amount)").
		Where("member_id = ?", memberID).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total.Float64, nil
}

func (d *earningDAO) ListForMember(ctx context.Context, memberID uint) ([]models.Earning, error) {
	earnings := []models.Earning{}
	err := d.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("id").
		Find(&earnings).Error
	if err != nil {
		return nil, err
	}
	return earnings, nil
}
