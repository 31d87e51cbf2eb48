package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   ENUM - fee frequency
============================== */

type CourseFeeFrequency string

const (
	CourseFeeFrequencyMonthly CourseFeeFrequency = "monthly"
	CourseFeeFrequencyOneTime CourseFeeFrequency = "one_time"
)

func (f CourseFeeFrequency) Valid() bool {
	return f == CourseFeeFrequencyMonthly || f == CourseFeeFrequencyOneTime
}

type Course struct {
	// PK
	CourseID uuid.UUID `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`

	// Identity
	CourseCode string  `gorm:"column:course_code;type:varchar(30);not null;uniqueIndex:uniq_course_code" json:"course_code"`
	CourseName string  `gorm:"column:course_name;type:varchar(120);not null;index" json:"course_name"`
	CourseDesc *string `gorm:"column:course_desc;type:text" json:"course_desc,omitempty"`

	// Fee schedule (read by the billing engine at charge generation time)
	CourseFeeAmount      int                `gorm:"column:course_fee_amount;type:int;not null;check:course_fee_amount>=0" json:"course_fee_amount"`
	CourseFeeFrequency   CourseFeeFrequency `gorm:"column:course_fee_frequency;type:varchar(20);not null;default:'monthly'" json:"course_fee_frequency"`
	CourseDurationMonths int                `gorm:"column:course_duration_months;type:int;not null;check:course_duration_months>0" json:"course_duration_months"`

	// Flags
	CourseIsActive bool `gorm:"column:course_is_active;not null;default:true;index" json:"course_is_active"`

	// Audit
	CourseCreatedAt time.Time      `gorm:"column:course_created_at;type:timestamptz;not null;default:now()" json:"course_created_at"`
	CourseUpdatedAt time.Time      `gorm:"column:course_updated_at;type:timestamptz;not null;default:now()" json:"course_updated_at"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;type:timestamptz;index" json:"-"`
}

func (Course) TableName() string { return "courses" }

func (m *Course) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.CourseCreatedAt.IsZero() {
		m.CourseCreatedAt = now
	}
	m.CourseUpdatedAt = now
	if m.CourseFeeFrequency == "" {
		m.CourseFeeFrequency = CourseFeeFrequencyMonthly
	}
	return nil
}

func (m *Course) BeforeUpdate(tx *gorm.DB) error {
	m.CourseUpdatedAt = time.Now()
	return nil
}
