package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   ENUM - enrollment status
============================== */

type EnrollmentStatus string

const (
	EnrollmentStatusActive    EnrollmentStatus = "active"
	EnrollmentStatusCompleted EnrollmentStatus = "completed"
	EnrollmentStatusDropped   EnrollmentStatus = "dropped"
)

type Enrollment struct {
	// PK
	EnrollmentID uuid.UUID `gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"enrollment_id"`

	// FKs
	EnrollmentStudentID uuid.UUID `gorm:"column:enrollment_student_id;type:uuid;not null;index" json:"enrollment_student_id"`
	EnrollmentCourseID  uuid.UUID `gorm:"column:enrollment_course_id;type:uuid;not null;index" json:"enrollment_course_id"`

	// Billing anchor: the day-of-month of the joining date decides when a new
	// monthly cycle is due. End date is computed once at creation from the
	// course duration and never recomputed by the scheduler.
	EnrollmentJoiningDate time.Time  `gorm:"column:enrollment_joining_date;type:date;not null" json:"enrollment_joining_date"`
	EnrollmentEndDate     *time.Time `gorm:"column:enrollment_end_date;type:date" json:"enrollment_end_date,omitempty"`

	// Status
	EnrollmentStatus EnrollmentStatus `gorm:"column:enrollment_status;type:varchar(20);not null;default:'active';index" json:"enrollment_status"`

	// Audit
	EnrollmentCreatedAt time.Time      `gorm:"column:enrollment_created_at;type:timestamptz;not null;default:now();index" json:"enrollment_created_at"`
	EnrollmentUpdatedAt time.Time      `gorm:"column:enrollment_updated_at;type:timestamptz;not null;default:now()" json:"enrollment_updated_at"`
	EnrollmentDeletedAt gorm.DeletedAt `gorm:"column:enrollment_deleted_at;type:timestamptz;index" json:"-"`
}

func (Enrollment) TableName() string { return "enrollments" }

func (m *Enrollment) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.EnrollmentCreatedAt.IsZero() {
		m.EnrollmentCreatedAt = now
	}
	m.EnrollmentUpdatedAt = now
	if m.EnrollmentStatus == "" {
		m.EnrollmentStatus = EnrollmentStatusActive
	}
	return nil
}

func (m *Enrollment) BeforeUpdate(tx *gorm.DB) error {
	m.EnrollmentUpdatedAt = time.Now()
	return nil
}
