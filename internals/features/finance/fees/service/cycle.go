package service

import (
	"time"

	"sekolahku_backend/internals/features/finance/fees/model"
)

// GraceDays is the fixed gap between charge generation and its due date.
const GraceDays = 5

// CycleKey returns the first day of t's month, the calendar identity of
// one billing cycle.
func CycleKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// DaysInMonth returns the number of calendar days in t's month.
func DaysInMonth(t time.Time) int {
	firstNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return firstNext.AddDate(0, 0, -1).Day()
}

// IsBillingAnniversary decides whether today starts a new billing cycle for
// an enrollment joined on joiningDate. Two cases bill:
//   - today's day-of-month equals the joining day-of-month, or
//   - today is the last day of its month and the joining day does not exist
//     in this month (joined on the 29th-31st, short month): the charge is
//     pulled forward to month-end rather than skipped.
func IsBillingAnniversary(today, joiningDate time.Time) bool {
	joinDay := joiningDate.Day()
	day := today.Day()
	if day == joinDay {
		return true
	}
	last := DaysInMonth(today)
	return day == last && joinDay > last
}

// DueDate returns the charge's due date for a cycle generated on genDate.
func DueDate(genDate time.Time) time.Time {
	return genDate.AddDate(0, 0, GraceDays)
}

// CycleMonthIndex returns the 1-based month number of cycleKey relative to
// the enrollment's billing start (the joining month is month 1). Used to
// match fees against a discount's [fromMonth, toMonth] range.
func CycleMonthIndex(joiningDate, cycleKey time.Time) int {
	join := joiningDate.Year()*12 + int(joiningDate.Month())
	cycle := cycleKey.Year()*12 + int(cycleKey.Month())
	return cycle - join + 1
}

// DiscountValue computes the discount amount for one fee. Fixed discounts
// are the flat amount with no cap: a fixed discount larger than the base
// produces a negative final amount, matching the recorded product decision.
// Percentage uses whole-unit integer math: the division truncates toward
// zero, so a fractional unit is dropped from the discount, never rounded
// up (33% of 1010 is 333).
func DiscountValue(kind model.FeeDiscountKind, amount, baseAmount int) int {
	switch kind {
	case model.FeeDiscountKindFixed:
		return amount
	case model.FeeDiscountKindPercentage:
		return baseAmount * amount / 100
	default:
		return 0
	}
}
