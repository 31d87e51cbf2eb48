package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/features/finance/fees/model"
)

func newTestDiscountEngine(store *memStore) *DiscountEngine {
	return &DiscountEngine{
		Enrollments: store,
		Schedules:   store,
		Charges:     store,
		Discounts:   store,
	}
}

// generateMonths runs the scheduler over consecutive anniversaries so the
// enrollment has n real fees to discount.
func generateMonths(t *testing.T, store *memStore, joining time.Time, n int) {
	t.Helper()
	sched := newTestScheduler(store)
	for i := 0; i < n; i++ {
		_, err := sched.Run(context.Background(), joining.AddDate(0, i, 0))
		require.NoError(t, err)
	}
}

func TestApplyFixedDiscountSingleMonth(t *testing.T) {
	store := newMemStore()
	enr := seedEnrollment(store, date(2025, time.January, 15), 5000, 6)
	generateMonths(t, store, enr.JoiningDate, 3) // months 1..3
	engine := newTestDiscountEngine(store)

	d, err := engine.ApplyDiscount(context.Background(), ApplyDiscountInput{
		EnrollmentID: enr.EnrollmentID,
		Amount:       500,
		Kind:         model.FeeDiscountKindFixed,
		Scope:        model.FeeDiscountScopeSingleMonth,
		FromMonth:    2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, d.FeeDiscountFromMonth)
	assert.Equal(t, 2, d.FeeDiscountToMonth)

	fees, _ := store.ChargesByEnrollment(context.Background(), enr.EnrollmentID)
	require.Len(t, fees, 3)

	// only month 2 is rewritten
	assert.Equal(t, 5000, fees[0].FeeFinalAmount)
	assert.Equal(t, 4500, fees[1].FeeFinalAmount)
	assert.Equal(t, 500, fees[1].FeeDiscountAmount)
	require.NotNil(t, fees[1].FeeDiscountID)
	assert.Equal(t, d.FeeDiscountID, *fees[1].FeeDiscountID)
	assert.Equal(t, 5000, fees[2].FeeFinalAmount)
}

func TestApplyPercentageDiscountEntireCourse(t *testing.T) {
	store := newMemStore()
	enr := seedEnrollment(store, date(2025, time.January, 15), 1000, 6)
	generateMonths(t, store, enr.JoiningDate, 2)
	engine := newTestDiscountEngine(store)

	d, err := engine.ApplyDiscount(context.Background(), ApplyDiscountInput{
		EnrollmentID: enr.EnrollmentID,
		Amount:       10,
		Kind:         model.FeeDiscountKindPercentage,
		Scope:        model.FeeDiscountScopeEntireCourse,
		FromMonth:    1,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, d.FeeDiscountToMonth) // clamped to course duration

	fees, _ := store.ChargesByEnrollment(context.Background(), enr.EnrollmentID)
	require.Len(t, fees, 2)
	for _, f := range fees {
		assert.Equal(t, 100, f.FeeDiscountAmount)
		assert.Equal(t, 900, f.FeeFinalAmount)
		assert.Equal(t, model.FeeStatusUnpaid, f.FeeStatus)
	}
}

func TestFixedDiscountIsUncapped(t *testing.T) {
	store := newMemStore()
	enr := seedEnrollment(store, date(2025, time.January, 15), 5000, 6)
	generateMonths(t, store, enr.JoiningDate, 1)
	engine := newTestDiscountEngine(store)

	_, err := engine.ApplyDiscount(context.Background(), ApplyDiscountInput{
		EnrollmentID: enr.EnrollmentID,
		Amount:       6000,
		Kind:         model.FeeDiscountKindFixed,
		Scope:        model.FeeDiscountScopeSingleMonth,
		FromMonth:    1,
	})
	require.NoError(t, err)

	fees, _ := store.ChargesByEnrollment(context.Background(), enr.EnrollmentID)
	require.Len(t, fees, 1)
	assert.Equal(t, -1000, fees[0].FeeFinalAmount)
	// nothing left to pay
	assert.Equal(t, model.FeeStatusPaid, fees[0].FeeStatus)
}

func TestDiscountDoesNotTouchLaterGeneratedFees(t *testing.T) {
	store := newMemStore()
	enr := seedEnrollment(store, date(2025, time.January, 15), 5000, 6)
	generateMonths(t, store, enr.JoiningDate, 1)
	engine := newTestDiscountEngine(store)

	_, err := engine.ApplyDiscount(context.Background(), ApplyDiscountInput{
		EnrollmentID: enr.EnrollmentID,
		Amount:       500,
		Kind:         model.FeeDiscountKindFixed,
		Scope:        model.FeeDiscountScopeEntireCourse,
		FromMonth:    1,
	})
	require.NoError(t, err)

	// month 2 generated after the discount was applied
	sched := newTestScheduler(store)
	_, err = sched.Run(context.Background(), date(2025, time.February, 15))
	require.NoError(t, err)

	fees, _ := store.ChargesByEnrollment(context.Background(), enr.EnrollmentID)
	require.Len(t, fees, 2)
	assert.Equal(t, 4500, fees[0].FeeFinalAmount)
	// covered by the range but born undiscounted
	assert.Equal(t, 5000, fees[1].FeeFinalAmount)
	assert.Nil(t, fees[1].FeeDiscountID)
}

func TestRemoveDiscountRestoresFees(t *testing.T) {
	store := newMemStore()
	enr := seedEnrollment(store, date(2025, time.January, 15), 5000, 6)
	generateMonths(t, store, enr.JoiningDate, 3)
	engine := newTestDiscountEngine(store)

	d, err := engine.ApplyDiscount(context.Background(), ApplyDiscountInput{
		EnrollmentID: enr.EnrollmentID,
		Amount:       500,
		Kind:         model.FeeDiscountKindFixed,
		Scope:        model.FeeDiscountScopeEntireCourse,
		FromMonth:    1,
	})
	require.NoError(t, err)

	require.NoError(t, engine.RemoveDiscount(context.Background(), d.FeeDiscountID))

	fees, _ := store.ChargesByEnrollment(context.Background(), enr.EnrollmentID)
	require.Len(t, fees, 3)
	for _, f := range fees {
		assert.Nil(t, f.FeeDiscountID)
		assert.Equal(t, 0, f.FeeDiscountAmount)
		assert.Equal(t, 5000, f.FeeFinalAmount)
		assert.Equal(t, model.FeeStatusUnpaid, f.FeeStatus)
	}

	_, err = store.DiscountByID(context.Background(), d.FeeDiscountID)
	assert.ErrorIs(t, err, ErrDiscountNotFound)
}

func TestRemoveDiscountReopensSettledFee(t *testing.T) {
	store := newMemStore()
	enr := seedEnrollment(store, date(2025, time.January, 15), 1000, 6)
	generateMonths(t, store, enr.JoiningDate, 1)
	engine := newTestDiscountEngine(store)

	d, err := engine.ApplyDiscount(context.Background(), ApplyDiscountInput{
		EnrollmentID: enr.EnrollmentID,
		Amount:       20,
		Kind:         model.FeeDiscountKindPercentage,
		Scope:        model.FeeDiscountScopeSingleMonth,
		FromMonth:    1,
	})
	require.NoError(t, err)

	// settle the discounted amount in full
	fees, _ := store.ChargesByEnrollment(context.Background(), enr.EnrollmentID)
	require.Len(t, fees, 1)
	recorder := &PaymentRecorder{Charges: store, Payments: store}
	fee, err := recorder.CollectPayment(context.Background(), fees[0].FeeID, uuid.New(), 800)
	require.NoError(t, err)
	assert.Equal(t, model.FeeStatusPaid, fee.FeeStatus)

	require.NoError(t, engine.RemoveDiscount(context.Background(), d.FeeDiscountID))

	fees, _ = store.ChargesByEnrollment(context.Background(), enr.EnrollmentID)
	assert.Equal(t, 1000, fees[0].FeeFinalAmount)
	assert.Equal(t, 800, fees[0].FeePaidAmount)
	assert.Equal(t, model.FeeStatusPartial, fees[0].FeeStatus)
}

func TestApplyDiscountValidation(t *testing.T) {
	store := newMemStore()
	enr := seedEnrollment(store, date(2025, time.January, 15), 5000, 6)
	engine := newTestDiscountEngine(store)

	base := ApplyDiscountInput{
		EnrollmentID: enr.EnrollmentID,
		Amount:       500,
		Kind:         model.FeeDiscountKindFixed,
		Scope:        model.FeeDiscountScopeSingleMonth,
		FromMonth:    1,
	}

	in := base
	in.Amount = 0
	_, err := engine.ApplyDiscount(context.Background(), in)
	assert.True(t, IsValidation(err))

	in = base
	in.Kind = "loyalty"
	_, err = engine.ApplyDiscount(context.Background(), in)
	assert.True(t, IsValidation(err))

	in = base
	in.FromMonth = 7 // beyond the 6 month duration
	_, err = engine.ApplyDiscount(context.Background(), in)
	assert.True(t, IsValidation(err))

	in = base
	in.EnrollmentID = uuid.New()
	_, err = engine.ApplyDiscount(context.Background(), in)
	assert.ErrorIs(t, err, ErrEnrollmentNotFound)
}
