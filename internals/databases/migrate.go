package database

import (
	"log"

	attendanceModel "sekolahku_backend/internals/features/academics/attendance/model"
	courseModel "sekolahku_backend/internals/features/academics/courses/model"
	enrollModel "sekolahku_backend/internals/features/academics/enrollments/model"
	studentModel "sekolahku_backend/internals/features/academics/students/model"
	feeModel "sekolahku_backend/internals/features/finance/fees/model"
)

// AutoMigrate syncs the schema. Opt-in via DB_AUTOMIGRATE; production
// rollouts run SQL migrations instead.
func AutoMigrate() {
	log.Println("[DB] running auto-migration...")
	err := DB.AutoMigrate(
		&studentModel.Student{},
		&courseModel.Course{},
		&enrollModel.Enrollment{},
		&attendanceModel.Attendance{},
		&feeModel.Fee{},
		&feeModel.FeeDiscount{},
		&feeModel.FeeTransaction{},
		&feeModel.BillingRun{},
	)
	if err != nil {
		log.Fatalf("[DB] auto-migration failed: %v", err)
	}
	log.Println("[DB] auto-migration done")
}
