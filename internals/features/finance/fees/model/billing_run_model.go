package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ==============================================
   MODEL - audit row for one scheduler pass
============================================== */

type BillingRun struct {
	// PK
	BillingRunID uuid.UUID `gorm:"column:billing_run_id;type:uuid;default:gen_random_uuid();primaryKey" json:"billing_run_id"`

	// The injected "today" the pass ran for (not necessarily wall clock)
	BillingRunDate time.Time `gorm:"column:billing_run_date;type:date;not null;index" json:"billing_run_date"`

	// Aggregate counts
	BillingRunProcessed int `gorm:"column:billing_run_processed;type:int;not null" json:"billing_run_processed"`
	BillingRunGenerated int `gorm:"column:billing_run_generated;type:int;not null" json:"billing_run_generated"`
	BillingRunGraduated int `gorm:"column:billing_run_graduated;type:int;not null" json:"billing_run_graduated"`
	BillingRunFailed    int `gorm:"column:billing_run_failed;type:int;not null" json:"billing_run_failed"`

	// Per-enrollment outcome log
	BillingRunLog datatypes.JSON `gorm:"column:billing_run_log;type:jsonb" json:"billing_run_log,omitempty"`

	BillingRunCreatedAt time.Time `gorm:"column:billing_run_created_at;type:timestamptz;not null;default:now()" json:"billing_run_created_at"`
}

func (BillingRun) TableName() string { return "billing_runs" }
