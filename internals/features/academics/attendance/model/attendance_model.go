package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusLate    AttendanceStatus = "late"
	AttendanceStatusExcused AttendanceStatus = "excused"
)

type Attendance struct {
	// PK
	AttendanceID uuid.UUID `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`

	// One mark per enrollment per day
	AttendanceEnrollmentID uuid.UUID `gorm:"column:attendance_enrollment_id;type:uuid;not null;index;uniqueIndex:uniq_attendance_enrollment_date,priority:1" json:"attendance_enrollment_id"`
	AttendanceDate         time.Time `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uniq_attendance_enrollment_date,priority:2" json:"attendance_date"`

	AttendanceStatus AttendanceStatus `gorm:"column:attendance_status;type:varchar(20);not null" json:"attendance_status"`
	AttendanceNote   *string          `gorm:"column:attendance_note;type:text" json:"attendance_note,omitempty"`

	// Audit
	AttendanceCreatedAt time.Time      `gorm:"column:attendance_created_at;type:timestamptz;not null;default:now()" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time      `gorm:"column:attendance_updated_at;type:timestamptz;not null;default:now()" json:"attendance_updated_at"`
	AttendanceDeletedAt gorm.DeletedAt `gorm:"column:attendance_deleted_at;type:timestamptz;index" json:"-"`
}

func (Attendance) TableName() string { return "attendances" }

func (m *Attendance) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.AttendanceCreatedAt.IsZero() {
		m.AttendanceCreatedAt = now
	}
	m.AttendanceUpdatedAt = now
	return nil
}

func (m *Attendance) BeforeUpdate(tx *gorm.DB) error {
	m.AttendanceUpdatedAt = time.Now()
	return nil
}
