package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AttendanceRoute "sekolahku_backend/internals/features/academics/attendance/route"
	CourseRoute "sekolahku_backend/internals/features/academics/courses/route"
	EnrollmentRoute "sekolahku_backend/internals/features/academics/enrollments/route"
	StudentRoute "sekolahku_backend/internals/features/academics/students/route"
)

func AcademicAdminRoutes(r fiber.Router, db *gorm.DB) {
	StudentRoute.StudentAdminRoutes(r, db)
	CourseRoute.CourseAdminRoutes(r, db)
	EnrollmentRoute.EnrollmentAdminRoutes(r, db)
	AttendanceRoute.AttendanceAdminRoutes(r, db)
}
