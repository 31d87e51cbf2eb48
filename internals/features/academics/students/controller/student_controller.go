package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/academics/students/dto"
	model "sekolahku_backend/internals/features/academics/students/model"
	helper "sekolahku_backend/internals/helpers"
)

type StudentHandler struct {
	DB *gorm.DB
}

/* =========================
   List (GET /students)
========================= */

func (h *StudentHandler) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 200)

	q := h.DB.WithContext(c.Context()).
		Model(&model.Student{}).
		Where("student_deleted_at IS NULL")

	if v := strings.TrimSpace(c.Query("q")); v != "" {
		like := "%" + strings.ToLower(v) + "%"
		q = q.Where("LOWER(student_full_name) LIKE ? OR LOWER(student_code) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Student
	if err := q.Order("student_created_at DESC").Order("student_id DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "List students", dto.ToStudentResponses(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

/* =========================
   Detail (GET /students/:id)
========================= */

func (h *StudentHandler) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Student
	if err := h.DB.WithContext(c.Context()).
		First(&m, "student_id = ? AND student_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Student detail", dto.ToStudentResponse(m))
}

/* =========================
   Create (POST /students)
========================= */

func (h *StudentHandler) Create(c *fiber.Ctx) error {
	var in dto.StudentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	m := dto.StudentCreateDTOToModel(in)
	if err := h.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "student_code already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "created", dto.ToStudentResponse(m))
}

/* =========================
   Update (PATCH /students/:id)
========================= */

func (h *StudentHandler) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.StudentUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var m model.Student
	if err := h.DB.WithContext(c.Context()).
		First(&m, "student_id = ? AND student_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyStudentUpdate(&m, in)

	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "student_code already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "updated", dto.ToStudentResponse(m))
}

/* =========================
   Delete (soft) - DELETE /students/:id
========================= */

func (h *StudentHandler) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Student
	if err := h.DB.WithContext(c.Context()).
		First(&m, "student_id = ? AND student_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := h.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "deleted", dto.ToStudentResponse(m))
}
