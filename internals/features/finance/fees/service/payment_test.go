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

func seedFee(store *memStore, final int) *model.Fee {
	fee := &model.Fee{
		FeeID:           uuid.New(),
		FeeEnrollmentID: uuid.New(),
		FeeStudentID:    uuid.New(),
		FeeCycleKey:     date(2025, time.February, 1),
		FeeDueDate:      date(2025, time.February, 20),
		FeeBaseAmount:   final,
		FeeFinalAmount:  final,
		FeeStatus:       model.FeeStatusUnpaid,
	}
	store.fees[fee.FeeID] = *fee
	return fee
}

func TestCollectPaymentLifecycle(t *testing.T) {
	store := newMemStore()
	fee := seedFee(store, 1000)
	recorder := &PaymentRecorder{Charges: store, Payments: store}
	collector := uuid.New()

	got, err := recorder.CollectPayment(context.Background(), fee.FeeID, collector, 300)
	require.NoError(t, err)
	assert.Equal(t, 300, got.FeePaidAmount)
	assert.Equal(t, model.FeeStatusPartial, got.FeeStatus)

	got, err = recorder.CollectPayment(context.Background(), fee.FeeID, collector, 700)
	require.NoError(t, err)
	assert.Equal(t, 1000, got.FeePaidAmount)
	assert.Equal(t, model.FeeStatusPaid, got.FeeStatus)

	// settled fees accept nothing more
	_, err = recorder.CollectPayment(context.Background(), fee.FeeID, collector, 1)
	assert.ErrorIs(t, err, ErrAlreadySettled)

	// both events were recorded with the collector
	require.Len(t, store.txns, 2)
	assert.Equal(t, 300, store.txns[0].FeeTransactionAmount)
	assert.Equal(t, 700, store.txns[1].FeeTransactionAmount)
	assert.Equal(t, collector, store.txns[0].FeeTransactionCollectorUserID)
	assert.Equal(t, fee.FeeID, store.txns[1].FeeTransactionFeeID)
}

func TestCollectPaymentRejectsOverpayment(t *testing.T) {
	store := newMemStore()
	fee := seedFee(store, 1000)
	recorder := &PaymentRecorder{Charges: store, Payments: store}

	_, err := recorder.CollectPayment(context.Background(), fee.FeeID, uuid.New(), 1001)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	// partial then an amount above the remaining balance
	_, err = recorder.CollectPayment(context.Background(), fee.FeeID, uuid.New(), 600)
	require.NoError(t, err)
	_, err = recorder.CollectPayment(context.Background(), fee.FeeID, uuid.New(), 500)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	// the rejected attempts left no trace
	stored, err := store.ChargeByID(context.Background(), fee.FeeID)
	require.NoError(t, err)
	assert.Equal(t, 600, stored.FeePaidAmount)
	assert.Equal(t, model.FeeStatusPartial, stored.FeeStatus)
	assert.Len(t, store.txns, 1)
}

func TestCollectPaymentRejectsNonPositiveAmounts(t *testing.T) {
	store := newMemStore()
	fee := seedFee(store, 1000)
	recorder := &PaymentRecorder{Charges: store, Payments: store}

	_, err := recorder.CollectPayment(context.Background(), fee.FeeID, uuid.New(), 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	_, err = recorder.CollectPayment(context.Background(), fee.FeeID, uuid.New(), -50)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestCollectPaymentUnknownFee(t *testing.T) {
	store := newMemStore()
	recorder := &PaymentRecorder{Charges: store, Payments: store}

	_, err := recorder.CollectPayment(context.Background(), uuid.New(), uuid.New(), 100)
	assert.ErrorIs(t, err, ErrFeeNotFound)
}

func TestCollectPaymentExactRemainderSettles(t *testing.T) {
	store := newMemStore()
	fee := seedFee(store, 750)
	recorder := &PaymentRecorder{Charges: store, Payments: store}

	got, err := recorder.CollectPayment(context.Background(), fee.FeeID, uuid.New(), 750)
	require.NoError(t, err)
	assert.Equal(t, model.FeeStatusPaid, got.FeeStatus)
	assert.Equal(t, 0, got.FeeFinalAmount-got.FeePaidAmount)
}
