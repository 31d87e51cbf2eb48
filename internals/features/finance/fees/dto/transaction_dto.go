package dto

import (
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/finance/fees/model"
)

type PaymentCollectDTO struct {
	Amount int `json:"amount" validate:"required,min=1"`
}

type FeeTransactionResponse struct {
	FeeTransactionID              uuid.UUID `json:"fee_transaction_id"`
	FeeTransactionFeeID           uuid.UUID `json:"fee_transaction_fee_id"`
	FeeTransactionAmount          int       `json:"fee_transaction_amount"`
	FeeTransactionCollectorUserID uuid.UUID `json:"fee_transaction_collector_user_id"`
	FeeTransactionCreatedAt       time.Time `json:"fee_transaction_created_at"`
}

func ToFeeTransactionResponse(m model.FeeTransaction) FeeTransactionResponse {
	return FeeTransactionResponse{
		FeeTransactionID:              m.FeeTransactionID,
		FeeTransactionFeeID:           m.FeeTransactionFeeID,
		FeeTransactionAmount:          m.FeeTransactionAmount,
		FeeTransactionCollectorUserID: m.FeeTransactionCollectorUserID,
		FeeTransactionCreatedAt:       m.FeeTransactionCreatedAt,
	}
}

func ToFeeTransactionResponses(list []model.FeeTransaction) []FeeTransactionResponse {
	out := make([]FeeTransactionResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToFeeTransactionResponse(m))
	}
	return out
}
