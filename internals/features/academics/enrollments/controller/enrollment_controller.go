package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "sekolahku_backend/internals/features/academics/courses/model"
	dto "sekolahku_backend/internals/features/academics/enrollments/dto"
	model "sekolahku_backend/internals/features/academics/enrollments/model"
	studentModel "sekolahku_backend/internals/features/academics/students/model"
	helper "sekolahku_backend/internals/helpers"
)

type EnrollmentHandler struct {
	DB *gorm.DB
}

/* =========================
   List (GET /enrollments)
========================= */

func (h *EnrollmentHandler) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 200)

	q := h.DB.WithContext(c.Context()).
		Model(&model.Enrollment{}).
		Where("enrollment_deleted_at IS NULL")

	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("enrollment_student_id = ?", id)
		}
	}
	if v := strings.TrimSpace(c.Query("course_id")); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("enrollment_course_id = ?", id)
		}
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" { // active|completed|dropped
		q = q.Where("enrollment_status = ?", strings.ToLower(v))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Enrollment
	if err := q.Order("enrollment_created_at DESC").Order("enrollment_id DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "List enrollments", dto.ToEnrollmentResponses(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

/* =========================
   Detail (GET /enrollments/:id)
========================= */

func (h *EnrollmentHandler) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Enrollment
	if err := h.DB.WithContext(c.Context()).
		First(&m, "enrollment_id = ? AND enrollment_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "enrollment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Enrollment detail", dto.ToEnrollmentResponse(m))
}

/* =========================
   Create (POST /enrollments) - admission
========================= */

func (h *EnrollmentHandler) Create(c *fiber.Ctx) error {
	var in dto.EnrollmentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	joining, err := time.Parse("2006-01-02", strings.TrimSpace(in.EnrollmentJoiningDate))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "enrollment_joining_date must be YYYY-MM-DD")
	}

	// Student & course must exist and be alive
	var student studentModel.Student
	if err := h.DB.WithContext(c.Context()).
		First(&student, "student_id = ? AND student_deleted_at IS NULL", in.EnrollmentStudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	var course courseModel.Course
	if err := h.DB.WithContext(c.Context()).
		First(&course, "course_id = ? AND course_deleted_at IS NULL", in.EnrollmentCourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// At most one active enrollment per (student, course) may be billed
	var existing int64
	if err := h.DB.WithContext(c.Context()).
		Model(&model.Enrollment{}).
		Where("enrollment_student_id = ? AND enrollment_course_id = ? AND enrollment_status = ? AND enrollment_deleted_at IS NULL",
			in.EnrollmentStudentID, in.EnrollmentCourseID, model.EnrollmentStatusActive).
		Count(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "student already has an active enrollment in this course")
	}

	// End date computed once at admission from the course duration
	endDate := joining.AddDate(0, course.CourseDurationMonths, 0)

	m := model.Enrollment{
		EnrollmentStudentID:   in.EnrollmentStudentID,
		EnrollmentCourseID:    in.EnrollmentCourseID,
		EnrollmentJoiningDate: joining,
		EnrollmentEndDate:     &endDate,
		EnrollmentStatus:      model.EnrollmentStatusActive,
	}
	if err := h.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "created", dto.ToEnrollmentResponse(m))
}

/* =========================
   Update (PATCH /enrollments/:id)
   Joining date correction only; end date is recomputed from the course.
========================= */

func (h *EnrollmentHandler) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.EnrollmentUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if in.EnrollmentJoiningDate == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "nothing to update")
	}

	joining, err := time.Parse("2006-01-02", strings.TrimSpace(*in.EnrollmentJoiningDate))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "enrollment_joining_date must be YYYY-MM-DD")
	}

	var m model.Enrollment
	if err := h.DB.WithContext(c.Context()).
		First(&m, "enrollment_id = ? AND enrollment_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "enrollment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.EnrollmentStatus != model.EnrollmentStatusActive {
		return helper.JsonError(c, fiber.StatusBadRequest, "only active enrollments can be corrected")
	}

	var course courseModel.Course
	if err := h.DB.WithContext(c.Context()).
		First(&course, "course_id = ?", m.EnrollmentCourseID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	endDate := joining.AddDate(0, course.CourseDurationMonths, 0)
	m.EnrollmentJoiningDate = joining
	m.EnrollmentEndDate = &endDate

	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "updated", dto.ToEnrollmentResponse(m))
}

/* =========================
   Withdraw (POST /enrollments/:id/withdraw)
   Administrative drop; the billing engine stops generating charges for it.
========================= */

func (h *EnrollmentHandler) Withdraw(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Enrollment
	if err := h.DB.WithContext(c.Context()).
		First(&m, "enrollment_id = ? AND enrollment_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "enrollment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.EnrollmentStatus != model.EnrollmentStatusActive {
		return helper.JsonError(c, fiber.StatusBadRequest, "enrollment is not active")
	}

	m.EnrollmentStatus = model.EnrollmentStatusDropped
	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "withdrawn", dto.ToEnrollmentResponse(m))
}
