package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	FeeRoute "sekolahku_backend/internals/features/finance/fees/route"
	databases "sekolahku_backend/internals/databases"
)

func FinanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	FeeRoute.FeeAdminRoutes(r, db, databases.Redis)
}

func FinanceSchedulerRoutes(r fiber.Router, db *gorm.DB) {
	FeeRoute.FeeSchedulerRoutes(r, db)
}
