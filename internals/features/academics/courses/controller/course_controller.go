package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/academics/courses/dto"
	model "sekolahku_backend/internals/features/academics/courses/model"
	helper "sekolahku_backend/internals/helpers"
)

type CourseHandler struct {
	DB *gorm.DB
}

/* =========================
   List (GET /courses)
========================= */

func (h *CourseHandler) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 200)

	q := h.DB.WithContext(c.Context()).
		Model(&model.Course{}).
		Where("course_deleted_at IS NULL")

	if v := strings.TrimSpace(c.Query("q")); v != "" {
		like := "%" + strings.ToLower(v) + "%"
		q = q.Where("LOWER(course_name) LIKE ? OR LOWER(course_code) LIKE ?", like, like)
	}
	if v := strings.TrimSpace(c.Query("active")); v != "" {
		if strings.EqualFold(v, "true") {
			q = q.Where("course_is_active = TRUE")
		} else if strings.EqualFold(v, "false") {
			q = q.Where("course_is_active = FALSE")
		}
	}
	if v := strings.TrimSpace(c.Query("fee_frequency")); v != "" {
		q = q.Where("course_fee_frequency = ?", strings.ToLower(v))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Course
	if err := q.Order("course_created_at DESC").Order("course_id DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "List courses", dto.ToCourseResponses(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

/* =========================
   Detail (GET /courses/:id)
========================= */

func (h *CourseHandler) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Course
	if err := h.DB.WithContext(c.Context()).
		First(&m, "course_id = ? AND course_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Course detail", dto.ToCourseResponse(m))
}

/* =========================
   Create (POST /courses)
========================= */

func (h *CourseHandler) Create(c *fiber.Ctx) error {
	var in dto.CourseCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	m := dto.CourseCreateDTOToModel(in)
	if err := h.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "course_code already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "created", dto.ToCourseResponse(m))
}

/* =========================
   Update (PATCH /courses/:id)
========================= */

func (h *CourseHandler) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.CourseUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var m model.Course
	if err := h.DB.WithContext(c.Context()).
		First(&m, "course_id = ? AND course_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyCourseUpdate(&m, in)
	if !m.CourseFeeFrequency.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "unsupported fee frequency")
	}

	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "course_code already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "updated", dto.ToCourseResponse(m))
}

/* =========================
   Delete (soft) - DELETE /courses/:id
========================= */

func (h *CourseHandler) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Course
	if err := h.DB.WithContext(c.Context()).
		First(&m, "course_id = ? AND course_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := h.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "deleted", dto.ToCourseResponse(m))
}
