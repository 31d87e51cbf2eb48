package controller

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	configs "sekolahku_backend/internals/configs"
	model "sekolahku_backend/internals/features/finance/fees/model"
	service "sekolahku_backend/internals/features/finance/fees/service"
	helper "sekolahku_backend/internals/helpers"
)

type SchedulerHandler struct {
	DB *gorm.DB
}

/* =========================
   Trigger (POST /billing/scheduler/run)

   Guarded by a shared key header instead of a user token so the cron
   sidecar or an ops curl can call it. Re-triggering for the same day
   is safe; existing cycles are skipped.
========================= */

func (h *SchedulerHandler) Run(c *fiber.Ctx) error {
	key := strings.TrimSpace(c.Get("X-Scheduler-Key"))
	if configs.SchedulerKey == "" ||
		subtle.ConstantTimeCompare([]byte(key), []byte(configs.SchedulerKey)) != 1 {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid scheduler key")
	}

	runDate := time.Now()
	if t, ok := helper.ParseDateQuery(c, "date"); ok {
		runDate = t
	} else if strings.TrimSpace(c.Query("date")) != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid date, want YYYY-MM-DD")
	}

	store := &service.GormStore{DB: h.DB}
	sched := &service.CycleScheduler{
		Enrollments: &service.GormEnrollmentRegistry{DB: h.DB},
		Schedules:   &service.GormCourseCatalog{DB: h.DB},
		Charges:     store,
		Runs:        store,
	}

	report, err := sched.Run(c.Context(), runDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Scheduler pass completed", report)
}

/* =========================
   Run history (GET /billing/scheduler/runs)
========================= */

func (h *SchedulerHandler) ListRuns(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.Context()).Model(&model.BillingRun{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.BillingRun
	if err := q.Order("billing_run_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "List scheduler runs", list,
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}
