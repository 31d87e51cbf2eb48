package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/finance/fees/dto"
	service "sekolahku_backend/internals/features/finance/fees/service"
	helper "sekolahku_backend/internals/helpers"
	auth "sekolahku_backend/internals/middlewares/auth"
)

type PaymentHandler struct {
	DB *gorm.DB
}

/* =========================
   Collect (POST /billing/fees/:id/payments)

   The collector is the authenticated staff user; the amount must not
   exceed the fee's remaining balance.
========================= */

func (h *PaymentHandler) Collect(c *fiber.Ctx) error {
	feeID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	collectorID, err := uuid.Parse(auth.UserIDFromLocals(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing user identity")
	}

	var in dto.PaymentCollectDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	store := &service.GormStore{DB: h.DB}
	recorder := &service.PaymentRecorder{Charges: store, Payments: store}

	fee, err := recorder.CollectPayment(c.Context(), feeID, collectorID, in.Amount)
	if err != nil {
		return svcError(c, err)
	}
	return helper.JsonCreated(c, "Payment recorded", dto.ToFeeResponse(*fee))
}
