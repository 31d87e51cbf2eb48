package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/finance/fees/model"
)

// memStore is an in-memory double for every port, so the engines can be
// exercised without a database. Uniqueness on (enrollment, cycle key) is
// enforced the same way the real store maps the constraint violation.
type memStore struct {
	enrollments map[uuid.UUID]ActiveEnrollment
	schedules   map[uuid.UUID]FeeSchedule
	fees        map[uuid.UUID]model.Fee
	discounts   map[uuid.UUID]model.FeeDiscount
	txns        []model.FeeTransaction
	runs        []model.BillingRun
	completed   []uuid.UUID
}

func newMemStore() *memStore {
	return &memStore{
		enrollments: map[uuid.UUID]ActiveEnrollment{},
		schedules:   map[uuid.UUID]FeeSchedule{},
		fees:        map[uuid.UUID]model.Fee{},
		discounts:   map[uuid.UUID]model.FeeDiscount{},
	}
}

func (s *memStore) addEnrollment(e ActiveEnrollment, sched FeeSchedule) {
	if e.Status == "" {
		e.Status = EnrollmentActive
	}
	s.enrollments[e.EnrollmentID] = e
	s.schedules[e.CourseID] = sched
}

/* ---- EnrollmentSource ---- */

func (s *memStore) ListActiveEnrollments(ctx context.Context) ([]ActiveEnrollment, error) {
	out := make([]ActiveEnrollment, 0, len(s.enrollments))
	for _, e := range s.enrollments {
		if e.Status != EnrollmentActive {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].EnrollmentID.String() < out[j].EnrollmentID.String()
	})
	return out, nil
}

func (s *memStore) EnrollmentByID(ctx context.Context, id uuid.UUID) (*ActiveEnrollment, error) {
	e, ok := s.enrollments[id]
	if !ok {
		return nil, ErrEnrollmentNotFound
	}
	return &e, nil
}

func (s *memStore) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	e, ok := s.enrollments[id]
	if !ok {
		return ErrEnrollmentNotFound
	}
	e.Status = "completed"
	s.enrollments[id] = e
	s.completed = append(s.completed, id)
	return nil
}

/* ---- FeeScheduleSource ---- */

func (s *memStore) GetFeeSchedule(ctx context.Context, courseID uuid.UUID) (FeeSchedule, error) {
	sched, ok := s.schedules[courseID]
	if !ok {
		return FeeSchedule{}, errors.New("course not found")
	}
	return sched, nil
}

/* ---- ChargeStore ---- */

func (s *memStore) ChargeByID(ctx context.Context, feeID uuid.UUID) (*model.Fee, error) {
	fee, ok := s.fees[feeID]
	if !ok {
		return nil, ErrFeeNotFound
	}
	return &fee, nil
}

func (s *memStore) ChargeExists(ctx context.Context, enrollmentID uuid.UUID, cycleKey time.Time) (bool, error) {
	for _, f := range s.fees {
		if f.FeeEnrollmentID == enrollmentID && f.FeeCycleKey.Equal(cycleKey) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) CreateCharge(ctx context.Context, fee *model.Fee) error {
	exists, _ := s.ChargeExists(ctx, fee.FeeEnrollmentID, fee.FeeCycleKey)
	if exists {
		return ErrDuplicateCycle
	}
	if fee.FeeID == uuid.Nil {
		fee.FeeID = uuid.New()
	}
	s.fees[fee.FeeID] = *fee
	return nil
}

func (s *memStore) ChargesByEnrollment(ctx context.Context, enrollmentID uuid.UUID) ([]model.Fee, error) {
	var out []model.Fee
	for _, f := range s.fees {
		if f.FeeEnrollmentID == enrollmentID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FeeCycleKey.Before(out[j].FeeCycleKey) })
	return out, nil
}

func (s *memStore) ChargesByDiscount(ctx context.Context, discountID uuid.UUID) ([]model.Fee, error) {
	var out []model.Fee
	for _, f := range s.fees {
		if f.FeeDiscountID != nil && *f.FeeDiscountID == discountID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FeeCycleKey.Before(out[j].FeeCycleKey) })
	return out, nil
}

/* ---- DiscountStore ---- */

func (s *memStore) DiscountByID(ctx context.Context, discountID uuid.UUID) (*model.FeeDiscount, error) {
	d, ok := s.discounts[discountID]
	if !ok {
		return nil, ErrDiscountNotFound
	}
	return &d, nil
}

func (s *memStore) CreateDiscountApplying(ctx context.Context, d *model.FeeDiscount, fees []model.Fee) error {
	s.discounts[d.FeeDiscountID] = *d
	for _, f := range fees {
		s.fees[f.FeeID] = f
	}
	return nil
}

func (s *memStore) RemoveDiscountReverting(ctx context.Context, d *model.FeeDiscount, fees []model.Fee) error {
	for _, f := range fees {
		s.fees[f.FeeID] = f
	}
	delete(s.discounts, d.FeeDiscountID)
	return nil
}

/* ---- PaymentStore ---- */

func (s *memStore) SaveChargeWithTransaction(ctx context.Context, fee *model.Fee, txn *model.FeeTransaction) error {
	if txn.FeeTransactionID == uuid.Nil {
		txn.FeeTransactionID = uuid.New()
	}
	s.fees[fee.FeeID] = *fee
	s.txns = append(s.txns, *txn)
	return nil
}

/* ---- RunStore ---- */

func (s *memStore) SaveRun(ctx context.Context, run *model.BillingRun) error {
	s.runs = append(s.runs, *run)
	return nil
}

var _ EnrollmentSource = (*memStore)(nil)
var _ FeeScheduleSource = (*memStore)(nil)
var _ ChargeStore = (*memStore)(nil)
var _ DiscountStore = (*memStore)(nil)
var _ PaymentStore = (*memStore)(nil)
var _ RunStore = (*memStore)(nil)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
