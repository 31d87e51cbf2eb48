package seeds

import (
	"gorm.io/gorm"

	academics "sekolahku_backend/internals/seeds/academics"
)

// RunAllSeeds loads demo data for a fresh environment. Every seeder skips
// rows that already exist, so re-running is safe.
func RunAllSeeds(db *gorm.DB) {
	academics.SeedStudentsFromJSON(db, "internals/seeds/academics/data_students.json")
	academics.SeedCoursesFromJSON(db, "internals/seeds/academics/data_courses.json")
}
