package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	service "sekolahku_backend/internals/features/finance/fees/service"
	helper "sekolahku_backend/internals/helpers"
)

// svcError maps billing service sentinels onto the standard error shape.
func svcError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrEnrollmentNotFound),
		errors.Is(err, service.ErrFeeNotFound),
		errors.Is(err, service.ErrDiscountNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDuplicateCycle),
		errors.Is(err, service.ErrAlreadySettled):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidAmount):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case service.IsValidation(err):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}
