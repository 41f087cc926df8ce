package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"mechanic_payroll/models"
	"mechanic_payroll/services"
	"mechanic_payroll/types"
)

type AddMemberRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type MemberFilters struct {
	Role string `query:"role"`
}

func (h *Handler) AddMember(c *fiber.Ctx) error {
	var req AddMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{Error: types.ErrInvalidInput})
	}

	member, err := h.Records.AddMember(c.UserContext(), req.Name, req.Role)
	if errors.Is(err, services.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{Error: types.ErrInvalidInput})
	}
	if err != nil {
		h.Logger.Error("Failed to add member", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{Error: types.ErrDatabaseError})
	}

	h.Metrics.RecordsCreated.WithLabelValues("member").Inc()
	h.Logger.Info("Member added", zap.Uint("member_id", member.ID), zap.String("role", member.Role))
	return c.JSON(types.MessageResponse{Message: types.MsgMemberAdded})
}

func (h *Handler) ListMembers(c *fiber.Ctx) error {
	var filters MemberFilters
	if err := c.QueryParser(&filters); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.APIResponse{
			Success: false,
			Error:   "Invalid filter parameters",
		})
	}

	members, err := h.Records.ListMembers(c.UserContext(), filters.Role)
	if err != nil {
		h.Logger.Error("Failed to fetch members", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrDatabaseError,
		})
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Data:    members,
	})
}

func (h *Handler) ListRoles(c *fiber.Ctx) error {
	roles := models.Roles()
	rates := make([]types.RoleRate, len(roles))
	for i, r := range roles {
		rates[i] = types.RoleRate{Role: string(r), Rate: r.Rate()}
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Data:    rates,
	})
}
