package dto

import (
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/finance/fees/model"
)

type DiscountApplyDTO struct {
	EnrollmentID uuid.UUID `json:"enrollment_id" validate:"required"`
	Amount       int       `json:"amount" validate:"required,min=1"`
	Kind         string    `json:"kind" validate:"required,oneof=fixed percentage"`
	Scope        string    `json:"scope" validate:"required,oneof=single_month entire_course"`
	FromMonth    int       `json:"from_month" validate:"required,min=1"`
}

type DiscountResponse struct {
	FeeDiscountID           uuid.UUID `json:"fee_discount_id"`
	FeeDiscountEnrollmentID uuid.UUID `json:"fee_discount_enrollment_id"`
	FeeDiscountStudentID    uuid.UUID `json:"fee_discount_student_id"`
	FeeDiscountAmount       int       `json:"fee_discount_amount"`
	FeeDiscountKind         string    `json:"fee_discount_kind"`
	FeeDiscountScope        string    `json:"fee_discount_scope"`
	FeeDiscountFromMonth    int       `json:"fee_discount_from_month"`
	FeeDiscountToMonth      int       `json:"fee_discount_to_month"`
	FeeDiscountCreatedAt    time.Time `json:"fee_discount_created_at"`
}

func ToDiscountResponse(m model.FeeDiscount) DiscountResponse {
	return DiscountResponse{
		FeeDiscountID:           m.FeeDiscountID,
		FeeDiscountEnrollmentID: m.FeeDiscountEnrollmentID,
		FeeDiscountStudentID:    m.FeeDiscountStudentID,
		FeeDiscountAmount:       m.FeeDiscountAmount,
		FeeDiscountKind:         string(m.FeeDiscountKind),
		FeeDiscountScope:        string(m.FeeDiscountScope),
		FeeDiscountFromMonth:    m.FeeDiscountFromMonth,
		FeeDiscountToMonth:      m.FeeDiscountToMonth,
		FeeDiscountCreatedAt:    m.FeeDiscountCreatedAt,
	}
}
