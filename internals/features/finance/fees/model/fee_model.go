package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   ENUM - settlement status
============================== */

type FeeStatus string

const (
	FeeStatusUnpaid  FeeStatus = "unpaid"
	FeeStatusPartial FeeStatus = "partial"
	FeeStatusPaid    FeeStatus = "paid"
)

// DeriveFeeStatus recomputes the settlement status from (paid, final).
// It must run whenever either value changes: payments raise paid, discount
// application or removal moves final, and a removal can reopen a paid fee.
func DeriveFeeStatus(paidAmount, finalAmount int) FeeStatus {
	remaining := finalAmount - paidAmount
	switch {
	case remaining <= 0:
		return FeeStatusPaid
	case paidAmount > 0:
		return FeeStatusPartial
	default:
		return FeeStatusUnpaid
	}
}

/* ==============================================
   MODEL - one charge per enrollment per cycle
============================================== */

type Fee struct {
	// PK
	FeeID uuid.UUID `gorm:"column:fee_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_id"`

	// Owner refs. The (enrollment, cycle key) pair is the identity of a
	// charge: the unique index is what makes repeated or concurrent
	// scheduler runs safe.
	FeeEnrollmentID uuid.UUID `gorm:"column:fee_enrollment_id;type:uuid;not null;index;uniqueIndex:uniq_fee_enrollment_cycle,priority:1" json:"fee_enrollment_id"`
	FeeStudentID    uuid.UUID `gorm:"column:fee_student_id;type:uuid;not null;index" json:"fee_student_id"`

	// Cycle: first day of the covered month
	FeeCycleKey time.Time `gorm:"column:fee_cycle_key;type:date;not null;uniqueIndex:uniq_fee_enrollment_cycle,priority:2" json:"fee_cycle_key"`
	FeeDueDate  time.Time `gorm:"column:fee_due_date;type:date;not null" json:"fee_due_date"`

	// Amounts. final = base - discount. Rollover is reserved for carrying
	// unpaid balance forward; the generator never fills it.
	FeeBaseAmount     int        `gorm:"column:fee_base_amount;type:int;not null;check:fee_base_amount>=0" json:"fee_base_amount"`
	FeeDiscountID     *uuid.UUID `gorm:"column:fee_discount_id;type:uuid;index" json:"fee_discount_id,omitempty"`
	FeeDiscountAmount int        `gorm:"column:fee_discount_amount;type:int;not null;default:0" json:"fee_discount_amount"`
	FeeFinalAmount    int        `gorm:"column:fee_final_amount;type:int;not null" json:"fee_final_amount"`
	FeePaidAmount     int        `gorm:"column:fee_paid_amount;type:int;not null;default:0;check:fee_paid_amount>=0" json:"fee_paid_amount"`
	FeeRolloverAmount int        `gorm:"column:fee_rollover_amount;type:int;not null;default:0" json:"fee_rollover_amount"`

	// Status
	FeeStatus FeeStatus `gorm:"column:fee_status;type:varchar(20);not null;default:'unpaid';index" json:"fee_status"`

	// Audit
	FeeCreatedAt time.Time      `gorm:"column:fee_created_at;type:timestamptz;not null;default:now();index" json:"fee_created_at"`
	FeeUpdatedAt time.Time      `gorm:"column:fee_updated_at;type:timestamptz;not null;default:now()" json:"fee_updated_at"`
	FeeDeletedAt gorm.DeletedAt `gorm:"column:fee_deleted_at;type:timestamptz;index" json:"-"`
}

func (Fee) TableName() string { return "fees" }

func (m *Fee) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.FeeCreatedAt.IsZero() {
		m.FeeCreatedAt = now
	}
	m.FeeUpdatedAt = now
	if m.FeeStatus == "" {
		m.FeeStatus = FeeStatusUnpaid
	}
	return nil
}

func (m *Fee) BeforeUpdate(tx *gorm.DB) error {
	m.FeeUpdatedAt = time.Now()
	return nil
}
