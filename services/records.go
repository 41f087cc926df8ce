package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"mechanic_payroll/dao"
	"mechanic_payroll/models"
)

// RecordService creates and reads members and their earnings.
type RecordService struct {
	Members  dao.MemberDAO
	Earnings dao.EarningDAO
	Logger   *zap.Logger
}

func NewRecordService(members dao.MemberDAO, earnings dao.EarningDAO, logger *zap.Logger) *RecordService {
	return &RecordService{Members: members, Earnings: earnings, Logger: logger}
}

func (s *RecordService) AddMember(ctx context.Context, name, role string) (*models.Member, error) {
	if name == "" || role == "" {
		return nil, ErrInvalidInput
	}

	// Unknown roles are stored as given and paid at rate 0.
	if _, ok := models.ParseRole(role); !ok {
		s.Logger.Warn("Member added with unknown role", zap.String("name", name), zap.String("role", role))
	}

	member := &models.Member{Name: name, Role: role}
	if err := s.Members.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}
	return member, nil
}

func (s *RecordService) AddEarning(ctx context.Context, memberID uint, amount float64) (*models.Earning, error) {
	if memberID == 0 {
		return nil, ErrInvalidInput
	}

	earning := &models.Earning{MemberID: memberID, Amount: amount}
	if err := s.Earnings.Create(ctx, earning); err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to create earning: %w", err)
	}
	return earning, nil
}

func (s *RecordService) ListMembers(ctx context.Context, role string) ([]models.Member, error) {
	return s.Members.List(ctx, role)
}

func (s *RecordService) ListEarnings(ctx context.Context, memberID uint) ([]models.Earning, error) {
	if _, err := s.Members.GetByID(ctx, memberID); err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return s.Earnings.ListForMember(ctx, memberID)
}
