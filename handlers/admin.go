package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"mechanic_payroll/middleware"
	"mechanic_payroll/services"
	"mechanic_payroll/types"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// InitAdmin creates the shop admin account (run once).
func (h *Handler) InitAdmin(c *fiber.Ctx) error {
	err := h.Admins.Init(c.UserContext())
	if errors.Is(err, services.ErrAdminExists) {
		return c.Status(fiber.StatusBadRequest).JSON(types.MessageResponse{Message: types.MsgAdminExists})
	}
	if errors.Is(err, services.ErrInvalidInput) {
		h.Logger.Error("Admin account misconfigured", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{Error: types.ErrAdminNotConfigured})
	}
	if err != nil {
		h.Logger.Error("Failed to create admin", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{Error: types.ErrDatabaseError})
	}

	h.Metrics.RecordsCreated.WithLabelValues("admin").Inc()
	return c.JSON(types.MessageResponse{Message: types.MsgAdminCreated})
}

// Login exchanges the admin credential for a bearer token.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil || req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{Error: types.ErrInvalidInput})
	}

	admin, err := h.Admins.Authenticate(c.UserContext(), req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{Error: types.ErrInvalidCredentials})
	}
	if err != nil {
		h.Logger.Error("Failed to authenticate admin", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{Error: types.ErrDatabaseError})
	}

	token, err := middleware.GenerateToken(h.JWTSecret, admin.Username, h.TokenExpiry)
	if err != nil {
		h.Logger.Error("Failed to sign token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{Error: types.ErrInternalError})
	}

	return c.JSON(fiber.Map{"token": token})
}
