package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/academics/attendance/dto"
	model "sekolahku_backend/internals/features/academics/attendance/model"
	helper "sekolahku_backend/internals/helpers"
)

type AttendanceHandler struct {
	DB *gorm.DB
}

/* =========================
   List (GET /attendance)
========================= */

func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 50, 500)

	q := h.DB.WithContext(c.Context()).
		Model(&model.Attendance{}).
		Where("attendance_deleted_at IS NULL")

	if v := strings.TrimSpace(c.Query("enrollment_id")); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("attendance_enrollment_id = ?", id)
		}
	}
	if t, ok := helper.ParseDateQuery(c, "date_from"); ok {
		q = q.Where("attendance_date >= ?", t)
	}
	if t, ok := helper.ParseDateQuery(c, "date_to"); ok {
		q = q.Where("attendance_date < ?", t.AddDate(0, 0, 1))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Attendance
	if err := q.Order("attendance_date DESC").Order("attendance_id DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "List attendance", dto.ToAttendanceResponses(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

/* =========================
   Mark (POST /attendance)
========================= */

func (h *AttendanceHandler) Mark(c *fiber.Ctx) error {
	var in dto.AttendanceMarkDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	day, err := time.Parse("2006-01-02", strings.TrimSpace(in.AttendanceDate))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "attendance_date must be YYYY-MM-DD")
	}

	m := model.Attendance{
		AttendanceEnrollmentID: in.AttendanceEnrollmentID,
		AttendanceDate:         day,
		AttendanceStatus:       model.AttendanceStatus(in.AttendanceStatus),
		AttendanceNote:         in.AttendanceNote,
	}
	if err := h.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "attendance already marked for this enrollment and date")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "marked", dto.ToAttendanceResponse(m))
}
