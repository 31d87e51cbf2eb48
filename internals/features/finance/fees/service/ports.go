package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/finance/fees/model"
)

/* ==============================================
   Collaborator ports

   The enrollment registry and course catalog are
   external to the billing engine: it reads them
   through these interfaces and only writes the
   completed-status transition back.
============================================== */

type ActiveEnrollment struct {
	EnrollmentID uuid.UUID
	StudentID    uuid.UUID
	CourseID     uuid.UUID
	JoiningDate  time.Time
	EndDate      *time.Time
	Status       string // "active" | "completed" | "dropped"
}

const EnrollmentActive = "active"

type EnrollmentSource interface {
	ListActiveEnrollments(ctx context.Context) ([]ActiveEnrollment, error)

	// EnrollmentByID returns any alive enrollment regardless of status;
	// callers that must not touch withdrawn or graduated enrollments check
	// Status themselves. ErrEnrollmentNotFound when missing.
	EnrollmentByID(ctx context.Context, enrollmentID uuid.UUID) (*ActiveEnrollment, error)

	MarkCompleted(ctx context.Context, enrollmentID uuid.UUID) error
}

type FeeSchedule struct {
	BaseFee        int
	FeeFrequency   string // "monthly" | "one_time"
	DurationMonths int
}

const FeeFrequencyMonthly = "monthly"

type FeeScheduleSource interface {
	GetFeeSchedule(ctx context.Context, courseID uuid.UUID) (FeeSchedule, error)
}

/* ==============================================
   Ledger ports
============================================== */

type ChargeStore interface {
	ChargeByID(ctx context.Context, feeID uuid.UUID) (*model.Fee, error) // ErrFeeNotFound

	// ChargeExists reports whether a charge exists for (enrollment, cycle).
	ChargeExists(ctx context.Context, enrollmentID uuid.UUID, cycleKey time.Time) (bool, error)

	// CreateCharge persists a new charge. A unique violation on
	// (enrollment, cycle key) is returned as ErrDuplicateCycle; this is
	// the atomic check-then-act the scheduler relies on.
	CreateCharge(ctx context.Context, fee *model.Fee) error

	ChargesByEnrollment(ctx context.Context, enrollmentID uuid.UUID) ([]model.Fee, error)
	ChargesByDiscount(ctx context.Context, discountID uuid.UUID) ([]model.Fee, error)
}

type DiscountStore interface {
	DiscountByID(ctx context.Context, discountID uuid.UUID) (*model.FeeDiscount, error) // ErrDiscountNotFound

	// CreateDiscountApplying persists the discount row and every rewritten
	// fee in one transaction.
	CreateDiscountApplying(ctx context.Context, d *model.FeeDiscount, fees []model.Fee) error

	// RemoveDiscountReverting saves every reverted fee and deletes the
	// discount row in one transaction.
	RemoveDiscountReverting(ctx context.Context, d *model.FeeDiscount, fees []model.Fee) error
}

type PaymentStore interface {
	// SaveChargeWithTransaction updates the fee and appends the payment
	// event atomically; neither write may land without the other.
	SaveChargeWithTransaction(ctx context.Context, fee *model.Fee, txn *model.FeeTransaction) error
}

type RunStore interface {
	SaveRun(ctx context.Context, run *model.BillingRun) error
}
