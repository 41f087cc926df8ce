package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"mechanic_payroll/services"
	"mechanic_payroll/types"
)

// Pointers tell a missing field apart from a zero value.
type AddEarningRequest struct {
	MemberID *uint    `json:"member_id"`
	Amount   *float64 `json:"amount"`
}

func (h *Handler) AddEarning(c *fiber.Ctx) error {
	var req AddEarningRequest
	if err := c.BodyParser(&req); err != nil || req.MemberID == nil || req.Amount == nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{Error: types.ErrInvalidInput})
	}

	earning, err := h.Records.AddEarning(c.UserContext(), *req.MemberID, *req.Amount)
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{Error: types.ErrInvalidInput})
	case errors.Is(err, services.ErrMemberNotFound):
		return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{Error: types.ErrMemberNotFound})
	case err != nil:
		h.Logger.Error("Failed to add earning", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{Error: types.ErrDatabaseError})
	}

	h.Metrics.RecordsCreated.WithLabelValues("earning").Inc()
	h.Logger.Info("Earning added", zap.Uint("member_id", earning.MemberID), zap.Float64("amount", earning.Amount))
	return c.JSON(types.MessageResponse{Message: types.MsgEarningAdded})
}

func (h *Handler) ListEarnings(c *fiber.Ctx) error {
	memberID, ok := memberIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrInvalidMemberID,
		})
	}

	earnings, err := h.Records.ListEarnings(c.UserContext(), memberID)
	if errors.Is(err, services.ErrMemberNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrMemberNotFound,
		})
	}
	if err != nil {
		h.Logger.Error("Failed to fetch earnings", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrDatabaseError,
		})
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Data:    earnings,
	})
}
