package dto

import (
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/academics/enrollments/model"
)

type EnrollmentCreateDTO struct {
	EnrollmentStudentID   uuid.UUID `json:"enrollment_student_id" validate:"required"`
	EnrollmentCourseID    uuid.UUID `json:"enrollment_course_id" validate:"required"`
	EnrollmentJoiningDate string    `json:"enrollment_joining_date" validate:"required"` // YYYY-MM-DD
}

type EnrollmentUpdateDTO struct {
	EnrollmentJoiningDate *string `json:"enrollment_joining_date,omitempty"` // YYYY-MM-DD
}

type EnrollmentResponse struct {
	EnrollmentID          uuid.UUID  `json:"enrollment_id"`
	EnrollmentStudentID   uuid.UUID  `json:"enrollment_student_id"`
	EnrollmentCourseID    uuid.UUID  `json:"enrollment_course_id"`
	EnrollmentJoiningDate time.Time  `json:"enrollment_joining_date"`
	EnrollmentEndDate     *time.Time `json:"enrollment_end_date,omitempty"`
	EnrollmentStatus      string     `json:"enrollment_status"`
	EnrollmentCreatedAt   time.Time  `json:"enrollment_created_at"`
	EnrollmentUpdatedAt   time.Time  `json:"enrollment_updated_at"`
}

/* =========================
   Mappers
========================= */

func ToEnrollmentResponse(m model.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		EnrollmentID:          m.EnrollmentID,
		EnrollmentStudentID:   m.EnrollmentStudentID,
		EnrollmentCourseID:    m.EnrollmentCourseID,
		EnrollmentJoiningDate: m.EnrollmentJoiningDate,
		EnrollmentEndDate:     m.EnrollmentEndDate,
		EnrollmentStatus:      string(m.EnrollmentStatus),
		EnrollmentCreatedAt:   m.EnrollmentCreatedAt,
		EnrollmentUpdatedAt:   m.EnrollmentUpdatedAt,
	}
}

func ToEnrollmentResponses(list []model.Enrollment) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToEnrollmentResponse(m))
	}
	return out
}
