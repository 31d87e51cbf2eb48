package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Student struct {
	// PK
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`

	// Identity
	StudentCode     string `gorm:"column:student_code;type:varchar(30);not null;uniqueIndex:uniq_student_code" json:"student_code"`
	StudentFullName string `gorm:"column:student_full_name;type:varchar(120);not null;index" json:"student_full_name"`

	// Contact
	StudentPhone        *string `gorm:"column:student_phone;type:varchar(30)" json:"student_phone,omitempty"`
	StudentGuardianName *string `gorm:"column:student_guardian_name;type:varchar(120)" json:"student_guardian_name,omitempty"`
	StudentAddress      *string `gorm:"column:student_address;type:text" json:"student_address,omitempty"`

	// Audit
	StudentCreatedAt time.Time      `gorm:"column:student_created_at;type:timestamptz;not null;default:now()" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;type:timestamptz;not null;default:now()" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;type:timestamptz;index" json:"-"`
}

func (Student) TableName() string { return "students" }

func (m *Student) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.StudentCreatedAt.IsZero() {
		m.StudentCreatedAt = now
	}
	m.StudentUpdatedAt = now
	return nil
}

func (m *Student) BeforeUpdate(tx *gorm.DB) error {
	m.StudentUpdatedAt = time.Now()
	return nil
}
