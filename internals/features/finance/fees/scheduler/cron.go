package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	configs "sekolahku_backend/internals/configs"
	service "sekolahku_backend/internals/features/finance/fees/service"
)

// StartFeeCycleCron schedules the daily billing pass. The pass is idempotent,
// so overlapping sources (this cron plus the HTTP trigger) are safe; the
// SkipIfStillRunning chain only prevents piling up slow passes.
func StartFeeCycleCron(db *gorm.DB) {
	schedule := configs.GetEnv("FEE_CYCLE_CRON", "0 2 * * *")

	store := &service.GormStore{DB: db}
	sched := &service.CycleScheduler{
		Enrollments: &service.GormEnrollmentRegistry{DB: db},
		Schedules:   &service.GormCourseCatalog{DB: db},
		Charges:     store,
		Runs:        store,
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		report, err := sched.Run(ctx, time.Now())
		if err != nil {
			log.Printf("[FEE-CYCLE] run failed: %v", err)
			return
		}
		log.Printf("[FEE-CYCLE] date=%s processed=%d generated=%d graduated=%d failed=%d",
			report.RunDate.Format("2006-01-02"),
			report.Processed, report.Generated, report.Graduated, report.Failed)
	})
	if err != nil {
		log.Fatalf("[FEE-CYCLE] add cron failed: %v", err)
	}

	log.Printf("[FEE-CYCLE] started schedule=%q", schedule)
	c.Start()
}
