package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/finance/fees/model"
)

/* ==============================================
   Cycle Scheduler

   Once per day, for every active enrollment:
   graduate it when past its end date, otherwise
   materialize this month's charge when today is
   its billing anniversary. Safe to re-run any
   number of times thanks to the unique
   (enrollment, cycle key) constraint.
============================================== */

type RunOutcome string

const (
	OutcomeGenerated     RunOutcome = "generated"
	OutcomeGraduated     RunOutcome = "graduated"
	OutcomeSkippedNotDue RunOutcome = "skipped_not_due"
	OutcomeSkippedExists RunOutcome = "skipped_exists"
	OutcomeSkippedFreq   RunOutcome = "skipped_frequency"
	OutcomeFailed        RunOutcome = "failed"
)

type RunLogEntry struct {
	EnrollmentID uuid.UUID  `json:"enrollment_id"`
	StudentID    uuid.UUID  `json:"student_id"`
	Outcome      RunOutcome `json:"outcome"`
	Detail       string     `json:"detail,omitempty"`
}

type RunReport struct {
	RunDate   time.Time     `json:"run_date"`
	Processed int           `json:"processed_count"`
	Generated int           `json:"generated_count"`
	Graduated int           `json:"graduated_count"`
	Failed    int           `json:"failed_count"`
	Log       []RunLogEntry `json:"per_enrollment_log"`
}

type CycleScheduler struct {
	Enrollments EnrollmentSource
	Schedules   FeeScheduleSource
	Charges     ChargeStore
	Runs        RunStore // optional; nil skips run persistence
}

// Run executes one scheduler pass for the injected date. The date is a
// parameter, not a clock read, so anniversary edge cases are testable and
// past days can be backfilled. Only the initial enrollment listing can fail
// the run; every per-enrollment error is isolated into the report.
func (s *CycleScheduler) Run(ctx context.Context, today time.Time) (*RunReport, error) {
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	enrollments, err := s.Enrollments.ListActiveEnrollments(ctx)
	if err != nil {
		return nil, err
	}

	report := &RunReport{RunDate: today, Log: make([]RunLogEntry, 0, len(enrollments))}

	for _, enr := range enrollments {
		report.Processed++
		entry := s.processOne(ctx, today, enr)
		switch entry.Outcome {
		case OutcomeGenerated:
			report.Generated++
		case OutcomeGraduated:
			report.Graduated++
		case OutcomeFailed:
			report.Failed++
			log.Printf("[SCHEDULER] enrollment=%s failed: %s", enr.EnrollmentID, entry.Detail)
		}
		report.Log = append(report.Log, entry)
	}

	s.persistRun(ctx, report)
	return report, nil
}

func (s *CycleScheduler) processOne(ctx context.Context, today time.Time, enr ActiveEnrollment) RunLogEntry {
	entry := RunLogEntry{EnrollmentID: enr.EnrollmentID, StudentID: enr.StudentID}

	// 1) Graduation: boundary is exclusive, a charge dated exactly on the
	// end date is still valid; completion happens the day after.
	if enr.EndDate != nil && today.After(dateOnly(*enr.EndDate)) {
		if err := s.Enrollments.MarkCompleted(ctx, enr.EnrollmentID); err != nil {
			entry.Outcome = OutcomeFailed
			entry.Detail = "mark completed: " + err.Error()
			return entry
		}
		entry.Outcome = OutcomeGraduated
		return entry
	}

	// 2) Billing not started yet
	if today.Before(dateOnly(enr.JoiningDate)) {
		entry.Outcome = OutcomeSkippedNotDue
		entry.Detail = "joining date in the future"
		return entry
	}

	// 3) Anniversary check
	if !IsBillingAnniversary(today, enr.JoiningDate) {
		entry.Outcome = OutcomeSkippedNotDue
		return entry
	}

	// 4) Only monthly recurring courses are scheduled
	sched, err := s.Schedules.GetFeeSchedule(ctx, enr.CourseID)
	if err != nil {
		entry.Outcome = OutcomeFailed
		entry.Detail = "fee schedule: " + err.Error()
		return entry
	}
	if sched.FeeFrequency != FeeFrequencyMonthly {
		entry.Outcome = OutcomeSkippedFreq
		return entry
	}

	// 5) Idempotency: an existing charge for this cycle means a retried or
	// concurrent trigger; skip silently.
	cycleKey := CycleKey(today)
	exists, err := s.Charges.ChargeExists(ctx, enr.EnrollmentID, cycleKey)
	if err != nil {
		entry.Outcome = OutcomeFailed
		entry.Detail = "cycle lookup: " + err.Error()
		return entry
	}
	if exists {
		entry.Outcome = OutcomeSkippedExists
		return entry
	}

	// 6) Materialize the charge. Active discounts are deliberately not
	// consulted here: a discount only rewrites fees that exist when it is
	// applied.
	fee := &model.Fee{
		FeeEnrollmentID: enr.EnrollmentID,
		FeeStudentID:    enr.StudentID,
		FeeCycleKey:     cycleKey,
		FeeDueDate:      DueDate(today),
		FeeBaseAmount:   sched.BaseFee,
		FeeFinalAmount:  sched.BaseFee,
		FeePaidAmount:   0,
		FeeStatus:       model.FeeStatusUnpaid,
	}
	if err := s.Charges.CreateCharge(ctx, fee); err != nil {
		if errors.Is(err, ErrDuplicateCycle) {
			// lost the race against another trigger, same as exists
			entry.Outcome = OutcomeSkippedExists
			return entry
		}
		entry.Outcome = OutcomeFailed
		entry.Detail = "create charge: " + err.Error()
		return entry
	}

	entry.Outcome = OutcomeGenerated
	return entry
}

// AdvanceCharge materializes the charge for genDate's cycle on operator
// request, outside the daily pass. It is subject to the same uniqueness
// rule: ErrDuplicateCycle surfaces to the caller instead of being skipped.
func (s *CycleScheduler) AdvanceCharge(ctx context.Context, enrollmentID uuid.UUID, genDate time.Time) (*model.Fee, error) {
	genDate = dateOnly(genDate)

	enr, err := s.Enrollments.EnrollmentByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	if enr.Status != EnrollmentActive {
		return nil, newValidationError("enrollment is not active")
	}

	sched, err := s.Schedules.GetFeeSchedule(ctx, enr.CourseID)
	if err != nil {
		return nil, err
	}
	if sched.FeeFrequency != FeeFrequencyMonthly {
		return nil, newValidationError("course fee is not billed monthly")
	}

	fee := &model.Fee{
		FeeEnrollmentID: enr.EnrollmentID,
		FeeStudentID:    enr.StudentID,
		FeeCycleKey:     CycleKey(genDate),
		FeeDueDate:      DueDate(genDate),
		FeeBaseAmount:   sched.BaseFee,
		FeeFinalAmount:  sched.BaseFee,
		FeePaidAmount:   0,
		FeeStatus:       model.FeeStatusUnpaid,
	}
	if err := s.Charges.CreateCharge(ctx, fee); err != nil {
		return nil, err
	}
	return fee, nil
}

func (s *CycleScheduler) persistRun(ctx context.Context, report *RunReport) {
	if s.Runs == nil {
		return
	}
	raw, err := json.Marshal(report.Log)
	if err != nil {
		log.Printf("[SCHEDULER] marshal run log: %v", err)
		raw = []byte("[]")
	}
	run := &model.BillingRun{
		BillingRunDate:      report.RunDate,
		BillingRunProcessed: report.Processed,
		BillingRunGenerated: report.Generated,
		BillingRunGraduated: report.Graduated,
		BillingRunFailed:    report.Failed,
		BillingRunLog:       raw,
	}
	if err := s.Runs.SaveRun(ctx, run); err != nil {
		log.Printf("[SCHEDULER] save run: %v", err)
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
