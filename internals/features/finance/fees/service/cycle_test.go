package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sekolahku_backend/internals/features/finance/fees/model"
)

func TestIsBillingAnniversary(t *testing.T) {
	cases := []struct {
		name    string
		today   time.Time
		joining time.Time
		want    bool
	}{
		{"same day of month", date(2025, time.February, 15), date(2025, time.January, 15), true},
		{"different day", date(2025, time.February, 14), date(2025, time.January, 15), false},
		{"joined 31st, Feb 28 pulls forward", date(2025, time.February, 28), date(2025, time.January, 31), true},
		{"joined 31st, leap Feb 29 pulls forward", date(2024, time.February, 29), date(2024, time.January, 31), true},
		{"joined 31st, Apr 30 pulls forward", date(2025, time.April, 30), date(2025, time.January, 31), true},
		{"joined 30th, Feb 28 pulls forward", date(2025, time.February, 28), date(2025, time.January, 30), true},
		{"joined 31st, May 31 exact match", date(2025, time.May, 31), date(2025, time.January, 31), true},
		{"joined 15th, month-end is not an anniversary", date(2025, time.February, 28), date(2025, time.January, 15), false},
		{"joined 28th, Feb 28 exact match not pull-forward", date(2025, time.February, 28), date(2025, time.January, 28), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsBillingAnniversary(tc.today, tc.joining))
		})
	}
}

func TestCycleKey(t *testing.T) {
	assert.Equal(t, date(2025, time.February, 1), CycleKey(date(2025, time.February, 15)))
	assert.Equal(t, date(2025, time.February, 1), CycleKey(date(2025, time.February, 1)))
	assert.Equal(t, date(2024, time.December, 1), CycleKey(date(2024, time.December, 31)))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 28, DaysInMonth(date(2025, time.February, 10)))
	assert.Equal(t, 29, DaysInMonth(date(2024, time.February, 10)))
	assert.Equal(t, 30, DaysInMonth(date(2025, time.April, 1)))
	assert.Equal(t, 31, DaysInMonth(date(2025, time.December, 25)))
}

func TestDueDate(t *testing.T) {
	assert.Equal(t, date(2025, time.February, 20), DueDate(date(2025, time.February, 15)))
	// grace period crossing a month boundary
	assert.Equal(t, date(2025, time.March, 2), DueDate(date(2025, time.February, 25)))
}

func TestCycleMonthIndex(t *testing.T) {
	joining := date(2025, time.January, 15)

	assert.Equal(t, 1, CycleMonthIndex(joining, date(2025, time.January, 1)))
	assert.Equal(t, 2, CycleMonthIndex(joining, date(2025, time.February, 1)))
	assert.Equal(t, 6, CycleMonthIndex(joining, date(2025, time.June, 1)))
	// year rollover
	assert.Equal(t, 13, CycleMonthIndex(joining, date(2026, time.January, 1)))
}

func TestDiscountValue(t *testing.T) {
	// fixed is flat per fee, uncapped
	assert.Equal(t, 500, DiscountValue(model.FeeDiscountKindFixed, 500, 5000))
	assert.Equal(t, 6000, DiscountValue(model.FeeDiscountKindFixed, 6000, 5000))

	// percentage of the base, integer math
	assert.Equal(t, 100, DiscountValue(model.FeeDiscountKindPercentage, 10, 1000))
	assert.Equal(t, 333, DiscountValue(model.FeeDiscountKindPercentage, 33, 1010))
	assert.Equal(t, 0, DiscountValue(model.FeeDiscountKindPercentage, 10, 5))
}

func TestDeriveFeeStatus(t *testing.T) {
	assert.Equal(t, model.FeeStatusUnpaid, model.DeriveFeeStatus(0, 1000))
	assert.Equal(t, model.FeeStatusPartial, model.DeriveFeeStatus(300, 1000))
	assert.Equal(t, model.FeeStatusPaid, model.DeriveFeeStatus(1000, 1000))
	// final dropped below paid (discount applied after payment)
	assert.Equal(t, model.FeeStatusPaid, model.DeriveFeeStatus(800, 500))
	// zero final with nothing paid settles immediately
	assert.Equal(t, model.FeeStatusPaid, model.DeriveFeeStatus(0, 0))
	// negative final (uncapped fixed discount) is settled
	assert.Equal(t, model.FeeStatusPaid, model.DeriveFeeStatus(0, -100))
}
