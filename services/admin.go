package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"mechanic_payroll/dao"
	"mechanic_payroll/models"
)

// AdminService owns the single shop admin account.
type AdminService struct {
	Admins   dao.AdminDAO
	Username string
	Password string
	Logger   *zap.Logger
}

func NewAdminService(admins dao.AdminDAO, username, password string, logger *zap.Logger) *AdminService {
	return &AdminService{
		Admins:   admins,
		Username: username,
		Password: password,
		Logger:   logger,
	}
}

// Init creates the admin account once. A second call writes nothing and
// returns ErrAdminExists, including when it loses an insert race.
func (s *AdminService) Init(ctx context.Context) error {
	_, err := s.Admins.GetByUsername(ctx, s.Username)
	if err == nil {
		return ErrAdminExists
	}
	if !errors.Is(err, dao.ErrNotFound) {
		return fmt.Errorf("failed to look up admin: %w", err)
	}
	if s.Password == "" {
		return fmt.Errorf("%w: admin password is not configured", ErrInvalidInput)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{Username: s.Username, Password: string(hashed)}
	if err := s.Admins.Create(ctx, admin); err != nil {
		if errors.Is(err, dao.ErrDuplicate) {
			return ErrAdminExists
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}

	s.Logger.Info("Admin created", zap.String("username", s.Username))
	return nil
}

// Authenticate checks a username and password against the stored hash.
func (s *AdminService) Authenticate(ctx context.Context, username, password string) (*models.Admin, error) {
	admin, err := s.Admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return admin, nil
}
