package dto

import (
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/academics/courses/model"
)

type CourseCreateDTO struct {
	CourseCode           string  `json:"course_code" validate:"required,max=30"`
	CourseName           string  `json:"course_name" validate:"required,max=120"`
	CourseDesc           *string `json:"course_desc,omitempty"`
	CourseFeeAmount      int     `json:"course_fee_amount" validate:"min=0"`
	CourseFeeFrequency   string  `json:"course_fee_frequency" validate:"omitempty,oneof=monthly one_time"`
	CourseDurationMonths int     `json:"course_duration_months" validate:"required,min=1"`
}

type CourseUpdateDTO struct {
	CourseCode           *string `json:"course_code,omitempty" validate:"omitempty,max=30"`
	CourseName           *string `json:"course_name,omitempty" validate:"omitempty,max=120"`
	CourseDesc           *string `json:"course_desc,omitempty"`
	CourseFeeAmount      *int    `json:"course_fee_amount,omitempty" validate:"omitempty,min=0"`
	CourseFeeFrequency   *string `json:"course_fee_frequency,omitempty" validate:"omitempty,oneof=monthly one_time"`
	CourseDurationMonths *int    `json:"course_duration_months,omitempty" validate:"omitempty,min=1"`
	CourseIsActive       *bool   `json:"course_is_active,omitempty"`
}

type CourseResponse struct {
	CourseID             uuid.UUID `json:"course_id"`
	CourseCode           string    `json:"course_code"`
	CourseName           string    `json:"course_name"`
	CourseDesc           *string   `json:"course_desc,omitempty"`
	CourseFeeAmount      int       `json:"course_fee_amount"`
	CourseFeeFrequency   string    `json:"course_fee_frequency"`
	CourseDurationMonths int       `json:"course_duration_months"`
	CourseIsActive       bool      `json:"course_is_active"`
	CourseCreatedAt      time.Time `json:"course_created_at"`
	CourseUpdatedAt      time.Time `json:"course_updated_at"`
}

/* =========================
   Mappers
========================= */

func ToCourseResponse(m model.Course) CourseResponse {
	return CourseResponse{
		CourseID:             m.CourseID,
		CourseCode:           m.CourseCode,
		CourseName:           m.CourseName,
		CourseDesc:           m.CourseDesc,
		CourseFeeAmount:      m.CourseFeeAmount,
		CourseFeeFrequency:   string(m.CourseFeeFrequency),
		CourseDurationMonths: m.CourseDurationMonths,
		CourseIsActive:       m.CourseIsActive,
		CourseCreatedAt:      m.CourseCreatedAt,
		CourseUpdatedAt:      m.CourseUpdatedAt,
	}
}

func ToCourseResponses(list []model.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToCourseResponse(m))
	}
	return out
}

func CourseCreateDTOToModel(d CourseCreateDTO) model.Course {
	freq := model.CourseFeeFrequency(d.CourseFeeFrequency)
	if freq == "" {
		freq = model.CourseFeeFrequencyMonthly
	}
	return model.Course{
		CourseCode:           d.CourseCode,
		CourseName:           d.CourseName,
		CourseDesc:           d.CourseDesc,
		CourseFeeAmount:      d.CourseFeeAmount,
		CourseFeeFrequency:   freq,
		CourseDurationMonths: d.CourseDurationMonths,
		CourseIsActive:       true,
	}
}

func ApplyCourseUpdate(m *model.Course, d CourseUpdateDTO) {
	if d.CourseCode != nil {
		m.CourseCode = *d.CourseCode
	}
	if d.CourseName != nil {
		m.CourseName = *d.CourseName
	}
	if d.CourseDesc != nil {
		m.CourseDesc = d.CourseDesc
	}
	if d.CourseFeeAmount != nil {
		m.CourseFeeAmount = *d.CourseFeeAmount
	}
	if d.CourseFeeFrequency != nil {
		m.CourseFeeFrequency = model.CourseFeeFrequency(*d.CourseFeeFrequency)
	}
	if d.CourseDurationMonths != nil {
		m.CourseDurationMonths = *d.CourseDurationMonths
	}
	if d.CourseIsActive != nil {
		m.CourseIsActive = *d.CourseIsActive
	}
}
