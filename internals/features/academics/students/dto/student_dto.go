package dto

import (
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/academics/students/model"
)

type StudentCreateDTO struct {
	StudentCode         string  `json:"student_code" validate:"required,max=30"`
	StudentFullName     string  `json:"student_full_name" validate:"required,max=120"`
	StudentPhone        *string `json:"student_phone,omitempty" validate:"omitempty,max=30"`
	StudentGuardianName *string `json:"student_guardian_name,omitempty" validate:"omitempty,max=120"`
	StudentAddress      *string `json:"student_address,omitempty"`
}

type StudentUpdateDTO struct {
	StudentCode         *string `json:"student_code,omitempty" validate:"omitempty,max=30"`
	StudentFullName     *string `json:"student_full_name,omitempty" validate:"omitempty,max=120"`
	StudentPhone        *string `json:"student_phone,omitempty" validate:"omitempty,max=30"`
	StudentGuardianName *string `json:"student_guardian_name,omitempty" validate:"omitempty,max=120"`
	StudentAddress      *string `json:"student_address,omitempty"`
}

type StudentResponse struct {
	StudentID           uuid.UUID `json:"student_id"`
	StudentCode         string    `json:"student_code"`
	StudentFullName     string    `json:"student_full_name"`
	StudentPhone        *string   `json:"student_phone,omitempty"`
	StudentGuardianName *string   `json:"student_guardian_name,omitempty"`
	StudentAddress      *string   `json:"student_address,omitempty"`
	StudentCreatedAt    time.Time `json:"student_created_at"`
	StudentUpdatedAt    time.Time `json:"student_updated_at"`
}

/* =========================
   Mappers
========================= */

func ToStudentResponse(m model.Student) StudentResponse {
	return StudentResponse{
		StudentID:           m.StudentID,
		StudentCode:         m.StudentCode,
		StudentFullName:     m.StudentFullName,
		StudentPhone:        m.StudentPhone,
		StudentGuardianName: m.StudentGuardianName,
		StudentAddress:      m.StudentAddress,
		StudentCreatedAt:    m.StudentCreatedAt,
		StudentUpdatedAt:    m.StudentUpdatedAt,
	}
}

func ToStudentResponses(list []model.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToStudentResponse(m))
	}
	return out
}

func StudentCreateDTOToModel(d StudentCreateDTO) model.Student {
	return model.Student{
		StudentCode:         d.StudentCode,
		StudentFullName:     d.StudentFullName,
		StudentPhone:        d.StudentPhone,
		StudentGuardianName: d.StudentGuardianName,
		StudentAddress:      d.StudentAddress,
	}
}

func ApplyStudentUpdate(m *model.Student, d StudentUpdateDTO) {
	if d.StudentCode != nil {
		m.StudentCode = *d.StudentCode
	}
	if d.StudentFullName != nil {
		m.StudentFullName = *d.StudentFullName
	}
	if d.StudentPhone != nil {
		m.StudentPhone = d.StudentPhone
	}
	if d.StudentGuardianName != nil {
		m.StudentGuardianName = d.StudentGuardianName
	}
	if d.StudentAddress != nil {
		m.StudentAddress = d.StudentAddress
	}
}
