package service

import (
	"context"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/finance/fees/model"
)

/* ==============================================
   Payment Recorder

   Applies one payment against one fee and keeps
   the unpaid → partial → paid machine monotonic.
   The fee update and the payment event land in
   the same transaction.
============================================== */

type PaymentRecorder struct {
	Charges  ChargeStore
	Payments PaymentStore
}

// CollectPayment validates and applies a manual cash payment.
func (r *PaymentRecorder) CollectPayment(ctx context.Context, feeID, collectorID uuid.UUID, amount int) (*model.Fee, error) {
	fee, err := r.Charges.ChargeByID(ctx, feeID)
	if err != nil {
		return nil, err
	}

	if fee.FeeStatus == model.FeeStatusPaid {
		return nil, ErrAlreadySettled
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if amount > fee.FeeFinalAmount-fee.FeePaidAmount {
		return nil, ErrInvalidAmount
	}

	fee.FeePaidAmount += amount
	fee.FeeStatus = model.DeriveFeeStatus(fee.FeePaidAmount, fee.FeeFinalAmount)

	txn := &model.FeeTransaction{
		FeeTransactionFeeID:           fee.FeeID,
		FeeTransactionAmount:          amount,
		FeeTransactionCollectorUserID: collectorID,
	}

	if err := r.Payments.SaveChargeWithTransaction(ctx, fee, txn); err != nil {
		return nil, err
	}
	return fee, nil
}
