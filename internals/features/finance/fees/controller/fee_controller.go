package controller

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/finance/fees/dto"
	model "sekolahku_backend/internals/features/finance/fees/model"
	service "sekolahku_backend/internals/features/finance/fees/service"
	helper "sekolahku_backend/internals/helpers"
)

type FeeHandler struct {
	DB    *gorm.DB
	Cache *redis.Client // optional; summary endpoint works without it
}

func (h *FeeHandler) scheduler() *service.CycleScheduler {
	return &service.CycleScheduler{
		Enrollments: &service.GormEnrollmentRegistry{DB: h.DB},
		Schedules:   &service.GormCourseCatalog{DB: h.DB},
		Charges:     &service.GormStore{DB: h.DB},
	}
}

/* =========================
   List (GET /billing/fees)
========================= */

func (h *FeeHandler) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 200)

	q := h.DB.WithContext(c.Context()).
		Model(&model.Fee{}).
		Where("fee_deleted_at IS NULL")

	if v := strings.TrimSpace(c.Query("enrollment_id")); v != "" {
		q = q.Where("fee_enrollment_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		q = q.Where("fee_student_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("course_id")); v != "" {
		q = q.Joins("JOIN enrollments ON enrollments.enrollment_id = fees.fee_enrollment_id").
			Where("enrollments.enrollment_course_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		q = q.Where("fee_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		like := "%" + strings.ToLower(v) + "%"
		q = q.Joins("JOIN students ON students.student_id = fees.fee_student_id").
			Where("LOWER(students.student_full_name) LIKE ? OR LOWER(students.student_code) LIKE ?", like, like)
	}
	if t, ok := helper.ParseDateQuery(c, "cycle_from"); ok {
		q = q.Where("fee_cycle_key >= ?", t)
	}
	if t, ok := helper.ParseDateQuery(c, "cycle_to"); ok {
		q = q.Where("fee_cycle_key <= ?", t)
	}
	if t, ok := helper.ParseDateQuery(c, "due_before"); ok {
		q = q.Where("fee_due_date <= ?", t)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Fee
	if err := q.Order("fee_cycle_key DESC").Order("fee_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "List fees", dto.ToFeeResponses(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

/* =========================
   Detail (GET /billing/fees/:id)
========================= */

func (h *FeeHandler) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	store := &service.GormStore{DB: h.DB}
	fee, err := store.ChargeByID(c.Context(), id)
	if err != nil {
		return svcError(c, err)
	}
	return helper.JsonOK(c, "Fee detail", dto.ToFeeResponse(*fee))
}

/* =========================
   Manual advance (POST /billing/fees/advance)

   Creates the charge for a future cycle on operator request. The
   unique (enrollment, cycle key) constraint still applies, so the
   scheduled pass cannot double-bill the same month afterwards.
========================= */

func (h *FeeHandler) Advance(c *fiber.Ctx) error {
	var in dto.FeeAdvanceDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	genDate := time.Now()
	if in.Date != nil && strings.TrimSpace(*in.Date) != "" {
		t, err := time.Parse("2006-01-02", strings.TrimSpace(*in.Date))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid date, want YYYY-MM-DD")
		}
		genDate = t
	}

	fee, err := h.scheduler().AdvanceCharge(c.Context(), in.FeeEnrollmentID, genDate)
	if err != nil {
		return svcError(c, err)
	}
	return helper.JsonCreated(c, "Charge created", dto.ToFeeResponse(*fee))
}

/* =========================
   Per-student summary (GET /billing/fees/summary)
========================= */

const summaryCacheKey = "billing:fees:summary"
const summaryCacheTTL = 60 * time.Second

func (h *FeeHandler) Summary(c *fiber.Ctx) error {
	if h.Cache != nil {
		if raw, err := h.Cache.Get(c.Context(), summaryCacheKey).Bytes(); err == nil {
			var cached []dto.FeeStudentSummary
			if json.Unmarshal(raw, &cached) == nil {
				return helper.JsonOK(c, "Fee summary (cached)", cached)
			}
		}
	}

	var rows []dto.FeeStudentSummary
	err := h.DB.WithContext(c.Context()).
		Model(&model.Fee{}).
		Select(`fee_student_id,
			COUNT(*) AS fee_count,
			COALESCE(SUM(fee_final_amount), 0) AS total_final,
			COALESCE(SUM(fee_paid_amount), 0) AS total_paid,
			COALESCE(SUM(fee_final_amount - fee_paid_amount), 0) AS total_outstanding,
			COUNT(*) FILTER (WHERE fee_status <> 'paid') AS unpaid_fee_count`).
		Where("fee_deleted_at IS NULL").
		Group("fee_student_id").
		Order("total_outstanding DESC").
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if h.Cache != nil {
		if raw, err := json.Marshal(rows); err == nil {
			// fire and forget; a cache miss next time is harmless
			h.Cache.Set(context.WithoutCancel(c.Context()), summaryCacheKey, raw, summaryCacheTTL)
		}
	}

	return helper.JsonOK(c, "Fee summary", rows)
}

/* =========================
   Payments of one fee (GET /billing/fees/:id/payments)
========================= */

func (h *FeeHandler) ListPayments(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	store := &service.GormStore{DB: h.DB}
	if _, err := store.ChargeByID(c.Context(), id); err != nil {
		return svcError(c, err)
	}

	var list []model.FeeTransaction
	if err := h.DB.WithContext(c.Context()).
		Where("fee_transaction_fee_id = ?", id).
		Order("fee_transaction_created_at ASC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Fee payments", dto.ToFeeTransactionResponses(list))
}
