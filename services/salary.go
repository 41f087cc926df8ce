package services

import (
	"context"
	"errors"
	"fmt"

	"mechanic_payroll/dao"
	"mechanic_payroll/models"
)

type SalaryReport struct {
	Member      string  `json:"member"`
	Role        string  `json:"role"`
	TotalEarned float64 `json:"total_earned"`
	Salary      float64 `json:"salary"`
}

// ComputeSalary applies the role's rate to the total. Unknown roles earn 0.
func ComputeSalary(total float64, role string) float64 {
	return total * models.RateFor(role)
}

type SalaryService struct {
	Members  dao.MemberDAO
	Earnings dao.EarningDAO
}

func NewSalaryService(members dao.MemberDAO, earnings dao.EarningDAO) *SalaryService {
	return &SalaryService{Members: members, Earnings: earnings}
}

// Calculate sums every earning recorded for the member and applies the
// member's role rate.
func (s *SalaryService) Calculate(ctx context.Context, memberID uint) (*SalaryReport, error) {
	member, err := s.Members.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to load member %d: %w", memberID, err)
	}

	total, err := s.Earnings.TotalForMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum earnings for member %d: %w", memberID, err)
	}

	return &SalaryReport{
		Member:      member.Name,
		Role:        member.Role,
		TotalEarned: total,
		Salary:      ComputeSalary(total, member.Role),
	}, nil
}
