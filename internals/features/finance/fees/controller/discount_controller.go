package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/finance/fees/dto"
	model "sekolahku_backend/internals/features/finance/fees/model"
	service "sekolahku_backend/internals/features/finance/fees/service"
	helper "sekolahku_backend/internals/helpers"
)

type DiscountHandler struct {
	DB *gorm.DB
}

func (h *DiscountHandler) engine() *service.DiscountEngine {
	store := &service.GormStore{DB: h.DB}
	return &service.DiscountEngine{
		Enrollments: &service.GormEnrollmentRegistry{DB: h.DB},
		Schedules:   &service.GormCourseCatalog{DB: h.DB},
		Charges:     store,
		Discounts:   store,
	}
}

/* =========================
   Apply (POST /billing/discounts)
========================= */

func (h *DiscountHandler) Apply(c *fiber.Ctx) error {
	var in dto.DiscountApplyDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	discount, err := h.engine().ApplyDiscount(c.Context(), service.ApplyDiscountInput{
		EnrollmentID: in.EnrollmentID,
		Amount:       in.Amount,
		Kind:         model.FeeDiscountKind(in.Kind),
		Scope:        model.FeeDiscountScope(in.Scope),
		FromMonth:    in.FromMonth,
	})
	if err != nil {
		return svcError(c, err)
	}
	return helper.JsonCreated(c, "Discount applied", dto.ToDiscountResponse(*discount))
}

/* =========================
   Detail (GET /billing/discounts/:id)

   Returns the discount plus every fee it is currently applied to.
========================= */

func (h *DiscountHandler) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	store := &service.GormStore{DB: h.DB}
	discount, err := store.DiscountByID(c.Context(), id)
	if err != nil {
		return svcError(c, err)
	}
	fees, err := store.ChargesByDiscount(c.Context(), id)
	if err != nil {
		return svcError(c, err)
	}

	return helper.JsonOK(c, "Discount detail", fiber.Map{
		"discount":     dto.ToDiscountResponse(*discount),
		"covered_fees": dto.ToFeeResponses(fees),
	})
}

/* =========================
   Remove (DELETE /billing/discounts/:id)
========================= */

func (h *DiscountHandler) Remove(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := h.engine().RemoveDiscount(c.Context(), id); err != nil {
		return svcError(c, err)
	}
	return helper.JsonDeleted(c, "Discount removed", fiber.Map{"fee_discount_id": id})
}
