package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"mechanic_payroll/services"
	"mechanic_payroll/types"
)

func (h *Handler) CalculateSalary(c *fiber.Ctx) error {
	memberID, ok := memberIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{Error: types.ErrInvalidMemberID})
	}

	report, err := h.Salary.Calculate(c.UserContext(), memberID)
	if errors.Is(err, services.ErrMemberNotFound) {
		h.Metrics.SalaryCalculations.WithLabelValues("not_found").Inc()
		return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{Error: types.ErrMemberNotFound})
	}
	if err != nil {
		h.Metrics.SalaryCalculations.WithLabelValues("error").Inc()
		h.Logger.Error("Failed to calculate salary", zap.Uint("member_id", memberID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{Error: types.ErrDatabaseError})
	}

	h.Metrics.SalaryCalculations.WithLabelValues("ok").Inc()
	return c.JSON(report)
}
