package dto

import (
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/finance/fees/model"
)

type FeeResponse struct {
	FeeID           uuid.UUID `json:"fee_id"`
	FeeEnrollmentID uuid.UUID `json:"fee_enrollment_id"`
	FeeStudentID    uuid.UUID `json:"fee_student_id"`

	FeeCycleKey time.Time `json:"fee_cycle_key"`
	FeeDueDate  time.Time `json:"fee_due_date"`

	FeeBaseAmount     int        `json:"fee_base_amount"`
	FeeDiscountID     *uuid.UUID `json:"fee_discount_id,omitempty"`
	FeeDiscountAmount int        `json:"fee_discount_amount"`
	FeeFinalAmount    int        `json:"fee_final_amount"`
	FeePaidAmount     int        `json:"fee_paid_amount"`
	FeeRolloverAmount int        `json:"fee_rollover_amount"`

	FeeStatus string `json:"fee_status"` // unpaid|partial|paid

	FeeCreatedAt time.Time `json:"fee_created_at"`
	FeeUpdatedAt time.Time `json:"fee_updated_at"`
}

func ToFeeResponse(m model.Fee) FeeResponse {
	return FeeResponse{
		FeeID:             m.FeeID,
		FeeEnrollmentID:   m.FeeEnrollmentID,
		FeeStudentID:      m.FeeStudentID,
		FeeCycleKey:       m.FeeCycleKey,
		FeeDueDate:        m.FeeDueDate,
		FeeBaseAmount:     m.FeeBaseAmount,
		FeeDiscountID:     m.FeeDiscountID,
		FeeDiscountAmount: m.FeeDiscountAmount,
		FeeFinalAmount:    m.FeeFinalAmount,
		FeePaidAmount:     m.FeePaidAmount,
		FeeRolloverAmount: m.FeeRolloverAmount,
		FeeStatus:         string(m.FeeStatus),
		FeeCreatedAt:      m.FeeCreatedAt,
		FeeUpdatedAt:      m.FeeUpdatedAt,
	}
}

func ToFeeResponses(list []model.Fee) []FeeResponse {
	out := make([]FeeResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToFeeResponse(m))
	}
	return out
}

/* =========================
   Manual advance charge
========================= */

type FeeAdvanceDTO struct {
	FeeEnrollmentID uuid.UUID `json:"fee_enrollment_id" validate:"required"`
	// Generation date, defaults to today; YYYY-MM-DD
	Date *string `json:"date,omitempty"`
}

/* =========================
   Per-student summary row
========================= */

type FeeStudentSummary struct {
	StudentID      uuid.UUID `json:"student_id" gorm:"column:fee_student_id"`
	FeeCount       int       `json:"fee_count" gorm:"column:fee_count"`
	TotalFinal     int       `json:"total_final" gorm:"column:total_final"`
	TotalPaid      int       `json:"total_paid" gorm:"column:total_paid"`
	TotalOutstand  int       `json:"total_outstanding" gorm:"column:total_outstanding"`
	UnpaidFeeCount int       `json:"unpaid_fee_count" gorm:"column:unpaid_fee_count"`
}
