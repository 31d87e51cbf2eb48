package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sekolahku_backend/internals/features/academics/attendance/controller"
)

func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.AttendanceHandler{DB: db}

	g := r.Group("/attendance")
	g.Get("/", h.List)
	g.Post("/", h.Mark)
}
