package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	controller "sekolahku_backend/internals/features/finance/fees/controller"
)

// FeeAdminRoutes mounts the billing surface under an already-authenticated
// group. The scheduler trigger is NOT here; it uses a shared key instead of
// a user token, see FeeSchedulerRoutes.
func FeeAdminRoutes(r fiber.Router, db *gorm.DB, cache *redis.Client) {
	feeH := &controller.FeeHandler{DB: db, Cache: cache}
	discH := &controller.DiscountHandler{DB: db}
	payH := &controller.PaymentHandler{DB: db}
	schedH := &controller.SchedulerHandler{DB: db}

	g := r.Group("/billing")

	fees := g.Group("/fees")
	fees.Get("/", feeH.List)
	fees.Get("/summary", feeH.Summary)
	fees.Post("/advance", feeH.Advance)
	fees.Get("/:id", feeH.GetByID)
	fees.Get("/:id/payments", feeH.ListPayments)
	fees.Post("/:id/payments", payH.Collect)

	discounts := g.Group("/discounts")
	discounts.Post("/", discH.Apply)
	discounts.Get("/:id", discH.GetByID)
	discounts.Delete("/:id", discH.Remove)

	g.Get("/scheduler/runs", schedH.ListRuns)
}

// FeeSchedulerRoutes mounts the key-guarded trigger outside the JWT group.
func FeeSchedulerRoutes(r fiber.Router, db *gorm.DB) {
	schedH := &controller.SchedulerHandler{DB: db}
	r.Post("/billing/scheduler/run", schedH.Run)
}
