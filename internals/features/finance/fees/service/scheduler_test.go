package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler(store *memStore) *CycleScheduler {
	return &CycleScheduler{
		Enrollments: store,
		Schedules:   store,
		Charges:     store,
		Runs:        store,
	}
}

func seedEnrollment(store *memStore, joining time.Time, baseFee, durationMonths int) ActiveEnrollment {
	end := joining.AddDate(0, durationMonths, 0)
	enr := ActiveEnrollment{
		EnrollmentID: uuid.New(),
		StudentID:    uuid.New(),
		CourseID:     uuid.New(),
		JoiningDate:  joining,
		EndDate:      &end,
	}
	store.addEnrollment(enr, FeeSchedule{
		BaseFee:        baseFee,
		FeeFrequency:   FeeFrequencyMonthly,
		DurationMonths: durationMonths,
	})
	return enr
}

func TestSchedulerGeneratesOnAnniversary(t *testing.T) {
	store := newMemStore()
	enr := seedEnrollment(store, date(2025, time.January, 15), 5000, 6)
	sched := newTestScheduler(store)

	report, err := sched.Run(context.Background(), date(2025, time.February, 15))
	require.NoError(t, err)

	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, 1, report.Generated)
	assert.Equal(t, 0, report.Failed)

	fees, _ := store.ChargesByEnrollment(context.Background(), enr.EnrollmentID)
	require.Len(t, fees, 1)
	fee := fees[0]
	assert.Equal(t, date(2025, time.February, 1), fee.FeeCycleKey)
	assert.Equal(t, date(2025, time.February, 20), fee.FeeDueDate)
	assert.Equal(t, 5000, fee.FeeBaseAmount)
	assert.Equal(t, 5000, fee.FeeFinalAmount)
	assert.Equal(t, 0, fee.FeePaidAmount)
}

func TestSchedulerRerunIsIdempotent(t *testing.T) {
	store := newMemStore()
	enr := seedEnrollment(store, date(2025, time.January, 15), 5000, 6)
	sched := newTestScheduler(store)

	today := date(2025, time.February, 15)
	_, err := sched.Run(context.Background(), today)
	require.NoError(t, err)

	report, err := sched.Run(context.Background(), today)
	require.NoError(t, err)

	assert.Equal(t, 0, report.Generated)
	require.Len(t, report.Log, 1)
	assert.Equal(t, OutcomeSkippedExists, report.Log[0].Outcome)

	fees, _ := store.ChargesByEnrollment(context.Background(), enr.EnrollmentID)
	assert.Len(t, fees, 1)
}

func TestSchedulerSkipsNonAnniversaryDays(t *testing.T) {
	store := newMemStore()
	seedEnrollment(store, date(2025, time.January, 15), 5000, 6)
	sched := newTestScheduler(store)

	report, err := sched.Run(context.Background(), date(2025, time.February, 14))
	require.NoError(t, err)

	assert.Equal(t, 0, report.Generated)
	require.Len(t, report.Log, 1)
	assert.Equal(t, OutcomeSkippedNotDue, report.Log[0].Outcome)
}

func TestSchedulerMonthEndPullForward(t *testing.T) {
	store := newMemStore()
	enr := seedEnrollment(store, date(2025, time.January, 31), 5000, 6)
	sched := newTestScheduler(store)

	report, err := sched.Run(context.Background(), date(2025, time.February, 28))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Generated)

	fees, _ := store.ChargesByEnrollment(context.Background(), enr.EnrollmentID)
	require.Len(t, fees, 1)
	assert.Equal(t, date(2025, time.February, 1), fees[0].FeeCycleKey)
	// due date counts from the actual generation day
	assert.Equal(t, date(2025, time.March, 5), fees[0].FeeDueDate)
}

func TestSchedulerGraduatesPastEndDate(t *testing.T) {
	store := newMemStore()
	enr := seedEnrollment(store, date(2025, time.January, 15), 5000, 6)
	sched := newTestScheduler(store)

	// end date is 2025-07-15; that day is still in-term
	report, err := sched.Run(context.Background(), date(2025, time.July, 15))
	require.NoError(t, err)
	assert.Equal(t, 0, report.Graduated)
	assert.Equal(t, 1, report.Generated)

	report, err = sched.Run(context.Background(), date(2025, time.July, 16))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Graduated)
	assert.Contains(t, store.completed, enr.EnrollmentID)

	// graduated enrollments leave the active pool entirely
	report, err = sched.Run(context.Background(), date(2025, time.August, 15))
	require.NoError(t, err)
	assert.Equal(t, 0, report.Processed)
}

func TestSchedulerSkipsFutureJoiners(t *testing.T) {
	store := newMemStore()
	seedEnrollment(store, date(2025, time.June, 15), 5000, 6)
	sched := newTestScheduler(store)

	report, err := sched.Run(context.Background(), date(2025, time.May, 15))
	require.NoError(t, err)
	assert.Equal(t, 0, report.Generated)
	require.Len(t, report.Log, 1)
	assert.Equal(t, OutcomeSkippedNotDue, report.Log[0].Outcome)
}

func TestSchedulerSkipsOneTimeFeeCourses(t *testing.T) {
	store := newMemStore()
	enr := ActiveEnrollment{
		EnrollmentID: uuid.New(),
		StudentID:    uuid.New(),
		CourseID:     uuid.New(),
		JoiningDate:  date(2025, time.January, 15),
	}
	store.addEnrollment(enr, FeeSchedule{BaseFee: 20000, FeeFrequency: "one_time", DurationMonths: 6})
	sched := newTestScheduler(store)

	report, err := sched.Run(context.Background(), date(2025, time.February, 15))
	require.NoError(t, err)
	assert.Equal(t, 0, report.Generated)
	require.Len(t, report.Log, 1)
	assert.Equal(t, OutcomeSkippedFreq, report.Log[0].Outcome)
}

func TestSchedulerPersistsRunReport(t *testing.T) {
	store := newMemStore()
	seedEnrollment(store, date(2025, time.January, 15), 5000, 6)
	sched := newTestScheduler(store)

	_, err := sched.Run(context.Background(), date(2025, time.February, 15))
	require.NoError(t, err)

	require.Len(t, store.runs, 1)
	run := store.runs[0]
	assert.Equal(t, date(2025, time.February, 15), run.BillingRunDate)
	assert.Equal(t, 1, run.BillingRunProcessed)
	assert.Equal(t, 1, run.BillingRunGenerated)
	assert.NotEmpty(t, run.BillingRunLog)
}

func TestAdvanceCharge(t *testing.T) {
	store := newMemStore()
	enr := seedEnrollment(store, date(2025, time.January, 15), 5000, 6)
	sched := newTestScheduler(store)

	fee, err := sched.AdvanceCharge(context.Background(), enr.EnrollmentID, date(2025, time.March, 3))
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.March, 1), fee.FeeCycleKey)
	assert.Equal(t, 5000, fee.FeeFinalAmount)

	// the scheduled pass later that month hits the uniqueness guard
	report, err := sched.Run(context.Background(), date(2025, time.March, 15))
	require.NoError(t, err)
	assert.Equal(t, 0, report.Generated)
	require.Len(t, report.Log, 1)
	assert.Equal(t, OutcomeSkippedExists, report.Log[0].Outcome)

	// advancing the same cycle twice is a caller-visible conflict
	_, err = sched.AdvanceCharge(context.Background(), enr.EnrollmentID, date(2025, time.March, 20))
	assert.ErrorIs(t, err, ErrDuplicateCycle)

	_, err = sched.AdvanceCharge(context.Background(), uuid.New(), date(2025, time.March, 3))
	assert.ErrorIs(t, err, ErrEnrollmentNotFound)
}

func TestAdvanceChargeRejectsInactiveEnrollments(t *testing.T) {
	store := newMemStore()
	sched := newTestScheduler(store)

	for _, status := range []string{"dropped", "completed"} {
		enr := seedEnrollment(store, date(2025, time.January, 15), 5000, 6)
		enr.Status = status
		store.enrollments[enr.EnrollmentID] = enr

		_, err := sched.AdvanceCharge(context.Background(), enr.EnrollmentID, date(2025, time.March, 3))
		assert.True(t, IsValidation(err), "status %s must be rejected", status)

		fees, _ := store.ChargesByEnrollment(context.Background(), enr.EnrollmentID)
		assert.Empty(t, fees, "status %s must not be billed", status)
	}
}
