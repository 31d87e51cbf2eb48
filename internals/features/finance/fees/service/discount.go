package service

import (
	"context"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/finance/fees/model"
)

/* ==============================================
   Discount Engine

   Applies a discount to the subset of an
   enrollment's existing fees whose cycle falls
   in the covered month range, and reverses it
   cleanly. Fees generated after application for
   a covered month stay undiscounted; re-running
   the application is the operator's job.
============================================== */

type DiscountEngine struct {
	Enrollments EnrollmentSource
	Schedules   FeeScheduleSource
	Charges     ChargeStore
	Discounts   DiscountStore
}

type ApplyDiscountInput struct {
	EnrollmentID uuid.UUID
	Amount       int
	Kind         model.FeeDiscountKind
	Scope        model.FeeDiscountScope
	FromMonth    int
}

// ApplyDiscount persists the discount and rewrites every already-existing
// fee in [fromMonth, toMonth]. All writes land in one transaction.
func (e *DiscountEngine) ApplyDiscount(ctx context.Context, in ApplyDiscountInput) (*model.FeeDiscount, error) {
	if in.Amount <= 0 {
		return nil, newValidationError("discount amount must be positive")
	}
	if !in.Kind.Valid() {
		return nil, newValidationError("unsupported discount kind")
	}
	if !in.Scope.Valid() {
		return nil, newValidationError("unsupported discount scope")
	}
	if in.FromMonth < 1 {
		return nil, newValidationError("from_month must be at least 1")
	}

	enr, err := e.Enrollments.EnrollmentByID(ctx, in.EnrollmentID)
	if err != nil {
		return nil, err
	}

	sched, err := e.Schedules.GetFeeSchedule(ctx, enr.CourseID)
	if err != nil {
		return nil, err
	}
	if in.FromMonth > sched.DurationMonths {
		return nil, newValidationError("from_month is beyond the course duration")
	}

	toMonth := in.FromMonth
	if in.Scope == model.FeeDiscountScopeEntireCourse {
		toMonth = sched.DurationMonths
	}

	discount := &model.FeeDiscount{
		FeeDiscountID:           uuid.New(),
		FeeDiscountEnrollmentID: enr.EnrollmentID,
		FeeDiscountStudentID:    enr.StudentID,
		FeeDiscountAmount:       in.Amount,
		FeeDiscountKind:         in.Kind,
		FeeDiscountScope:        in.Scope,
		FeeDiscountFromMonth:    in.FromMonth,
		FeeDiscountToMonth:      toMonth,
	}

	fees, err := e.Charges.ChargesByEnrollment(ctx, enr.EnrollmentID)
	if err != nil {
		return nil, err
	}

	covered := make([]model.Fee, 0, len(fees))
	for _, fee := range fees {
		idx := CycleMonthIndex(enr.JoiningDate, fee.FeeCycleKey)
		if idx < in.FromMonth || idx > toMonth {
			continue
		}
		value := DiscountValue(in.Kind, in.Amount, fee.FeeBaseAmount)
		fee.FeeDiscountID = &discount.FeeDiscountID
		fee.FeeDiscountAmount = value
		fee.FeeFinalAmount = fee.FeeBaseAmount - value
		fee.FeeStatus = model.DeriveFeeStatus(fee.FeePaidAmount, fee.FeeFinalAmount)
		covered = append(covered, fee)
	}

	if err := e.Discounts.CreateDiscountApplying(ctx, discount, covered); err != nil {
		return nil, err
	}
	return discount, nil
}

// RemoveDiscount reverts every linked fee to its undiscounted base amount,
// recomputes its status (a settled fee can reopen to partial when final
// rises above what was paid), then deletes the discount row.
func (e *DiscountEngine) RemoveDiscount(ctx context.Context, discountID uuid.UUID) error {
	discount, err := e.Discounts.DiscountByID(ctx, discountID)
	if err != nil {
		return err
	}

	fees, err := e.Charges.ChargesByDiscount(ctx, discountID)
	if err != nil {
		return err
	}

	for i := range fees {
		fees[i].FeeDiscountID = nil
		fees[i].FeeDiscountAmount = 0
		fees[i].FeeFinalAmount = fees[i].FeeBaseAmount
		fees[i].FeeStatus = model.DeriveFeeStatus(fees[i].FeePaidAmount, fees[i].FeeFinalAmount)
	}

	return e.Discounts.RemoveDiscountReverting(ctx, discount, fees)
}
