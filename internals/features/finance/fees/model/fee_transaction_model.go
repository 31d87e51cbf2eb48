package model

import (
	"time"

	"github.com/google/uuid"
)

/* ==============================================
   MODEL - append-only payment event

   Rows are never updated or deleted; corrections
   happen via new payments or discount reversal.
============================================== */

type FeeTransaction struct {
	// PK
	FeeTransactionID uuid.UUID `gorm:"column:fee_transaction_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_transaction_id"`

	// Owner
	FeeTransactionFeeID uuid.UUID `gorm:"column:fee_transaction_fee_id;type:uuid;not null;index" json:"fee_transaction_fee_id"`

	// Event
	FeeTransactionAmount          int       `gorm:"column:fee_transaction_amount;type:int;not null;check:fee_transaction_amount>0" json:"fee_transaction_amount"`
	FeeTransactionCollectorUserID uuid.UUID `gorm:"column:fee_transaction_collector_user_id;type:uuid;not null" json:"fee_transaction_collector_user_id"`

	FeeTransactionCreatedAt time.Time `gorm:"column:fee_transaction_created_at;type:timestamptz;not null;default:now();index" json:"fee_transaction_created_at"`
}

func (FeeTransaction) TableName() string { return "fee_transactions" }
