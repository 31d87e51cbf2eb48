package dto

import (
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/academics/attendance/model"
)

type AttendanceMarkDTO struct {
	AttendanceEnrollmentID uuid.UUID `json:"attendance_enrollment_id" validate:"required"`
	AttendanceDate         string    `json:"attendance_date" validate:"required"` // YYYY-MM-DD
	AttendanceStatus       string    `json:"attendance_status" validate:"required,oneof=present absent late excused"`
	AttendanceNote         *string   `json:"attendance_note,omitempty"`
}

type AttendanceResponse struct {
	AttendanceID           uuid.UUID `json:"attendance_id"`
	AttendanceEnrollmentID uuid.UUID `json:"attendance_enrollment_id"`
	AttendanceDate         time.Time `json:"attendance_date"`
	AttendanceStatus       string    `json:"attendance_status"`
	AttendanceNote         *string   `json:"attendance_note,omitempty"`
	AttendanceCreatedAt    time.Time `json:"attendance_created_at"`
}

func ToAttendanceResponse(m model.Attendance) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID:           m.AttendanceID,
		AttendanceEnrollmentID: m.AttendanceEnrollmentID,
		AttendanceDate:         m.AttendanceDate,
		AttendanceStatus:       string(m.AttendanceStatus),
		AttendanceNote:         m.AttendanceNote,
		AttendanceCreatedAt:    m.AttendanceCreatedAt,
	}
}

func ToAttendanceResponses(list []model.Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToAttendanceResponse(m))
	}
	return out
}
