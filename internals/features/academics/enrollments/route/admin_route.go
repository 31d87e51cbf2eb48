package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sekolahku_backend/internals/features/academics/enrollments/controller"
)

func EnrollmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.EnrollmentHandler{DB: db}

	g := r.Group("/enrollments")
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Post("/", h.Create)
	g.Patch("/:id", h.Update)
	g.Post("/:id/withdraw", h.Withdraw)
}
