package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   ENUMS - discount kind & scope
============================== */

type FeeDiscountKind string

const (
	FeeDiscountKindFixed      FeeDiscountKind = "fixed"
	FeeDiscountKindPercentage FeeDiscountKind = "percentage"
)

func (k FeeDiscountKind) Valid() bool {
	return k == FeeDiscountKindFixed || k == FeeDiscountKindPercentage
}

type FeeDiscountScope string

const (
	FeeDiscountScopeSingleMonth  FeeDiscountScope = "single_month"
	FeeDiscountScopeEntireCourse FeeDiscountScope = "entire_course"
)

func (s FeeDiscountScope) Valid() bool {
	return s == FeeDiscountScopeSingleMonth || s == FeeDiscountScopeEntireCourse
}

/* ==============================================
   MODEL - one discount covering N fees
============================================== */

type FeeDiscount struct {
	// PK
	FeeDiscountID uuid.UUID `gorm:"column:fee_discount_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_discount_id"`

	// Owner refs
	FeeDiscountEnrollmentID uuid.UUID `gorm:"column:fee_discount_enrollment_id;type:uuid;not null;index" json:"fee_discount_enrollment_id"`
	FeeDiscountStudentID    uuid.UUID `gorm:"column:fee_discount_student_id;type:uuid;not null;index" json:"fee_discount_student_id"`

	// Amount semantics depend on kind: fixed = flat amount per covered fee,
	// percentage = percent of the fee's base amount.
	FeeDiscountAmount int              `gorm:"column:fee_discount_amount;type:int;not null;check:fee_discount_amount>0" json:"fee_discount_amount"`
	FeeDiscountKind   FeeDiscountKind  `gorm:"column:fee_discount_kind;type:varchar(20);not null" json:"fee_discount_kind"`
	FeeDiscountScope  FeeDiscountScope `gorm:"column:fee_discount_scope;type:varchar(20);not null" json:"fee_discount_scope"`

	// Covered month range, 1-based relative to the enrollment's billing start.
	// to_month equals the course duration when scope is entire_course.
	FeeDiscountFromMonth int `gorm:"column:fee_discount_from_month;type:int;not null;check:fee_discount_from_month>=1" json:"fee_discount_from_month"`
	FeeDiscountToMonth   int `gorm:"column:fee_discount_to_month;type:int;not null" json:"fee_discount_to_month"`

	// Audit
	FeeDiscountCreatedAt time.Time      `gorm:"column:fee_discount_created_at;type:timestamptz;not null;default:now()" json:"fee_discount_created_at"`
	FeeDiscountUpdatedAt time.Time      `gorm:"column:fee_discount_updated_at;type:timestamptz;not null;default:now()" json:"fee_discount_updated_at"`
	FeeDiscountDeletedAt gorm.DeletedAt `gorm:"column:fee_discount_deleted_at;type:timestamptz;index" json:"-"`
}

func (FeeDiscount) TableName() string { return "fee_discounts" }

func (m *FeeDiscount) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.FeeDiscountCreatedAt.IsZero() {
		m.FeeDiscountCreatedAt = now
	}
	m.FeeDiscountUpdatedAt = now
	return nil
}

func (m *FeeDiscount) BeforeUpdate(tx *gorm.DB) error {
	m.FeeDiscountUpdatedAt = time.Now()
	return nil
}
