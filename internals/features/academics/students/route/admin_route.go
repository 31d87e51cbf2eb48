package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sekolahku_backend/internals/features/academics/students/controller"
)

// StudentAdminRoutes mounts student CRUD under an already-authenticated group.
func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.StudentHandler{DB: db}

	g := r.Group("/students")
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Post("/", h.Create)
	g.Patch("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
