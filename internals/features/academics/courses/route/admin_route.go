package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sekolahku_backend/internals/features/academics/courses/controller"
)

func CourseAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.CourseHandler{DB: db}

	g := r.Group("/courses")
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Post("/", h.Create)
	g.Patch("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
