package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	configs "sekolahku_backend/internals/configs"
	routeDetails "sekolahku_backend/internals/route/details"

	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== ADMIN =====================
	// Everything operational lives behind a staff token; there is no
	// public surface besides health and the scheduler trigger.
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMiddleware.RequireRoles("admin", "staff"),
	)

	// ===================== SCHEDULER =====================
	// Shared-key guarded, mounted outside the JWT group so the cron
	// sidecar can call it without a user token.
	sched := app.Group("/api/s")

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Academic routes...")
	routeDetails.AcademicAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Finance routes...")
	routeDetails.FinanceAdminRoutes(admin, db)
	routeDetails.FinanceSchedulerRoutes(sched, db)
}
