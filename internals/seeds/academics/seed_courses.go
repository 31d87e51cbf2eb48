package academics

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	model "sekolahku_backend/internals/features/academics/courses/model"
)

type CourseSeed struct {
	CourseCode           string  `json:"course_code"`
	CourseName           string  `json:"course_name"`
	CourseDesc           *string `json:"course_desc"`
	CourseFeeAmount      int     `json:"course_fee_amount"`
	CourseFeeFrequency   string  `json:"course_fee_frequency"`
	CourseDurationMonths int     `json:"course_duration_months"`
}

func SeedCoursesFromJSON(db *gorm.DB, filePath string) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("[SEED] read %s failed: %v", filePath, err)
		return
	}

	var seeds []CourseSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("[SEED] decode %s failed: %v", filePath, err)
	}

	var existing []string
	if err := db.Model(&model.Course{}).Select("course_code").Find(&existing).Error; err != nil {
		log.Fatalf("[SEED] load existing course codes failed: %v", err)
	}
	existingMap := make(map[string]bool, len(existing))
	for _, code := range existing {
		existingMap[code] = true
	}

	var rows []model.Course
	for _, s := range seeds {
		if existingMap[s.CourseCode] {
			continue
		}
		freq := model.CourseFeeFrequency(s.CourseFeeFrequency)
		if !freq.Valid() {
			freq = model.CourseFeeFrequencyMonthly
		}
		rows = append(rows, model.Course{
			CourseCode:           s.CourseCode,
			CourseName:           s.CourseName,
			CourseDesc:           s.CourseDesc,
			CourseFeeAmount:      s.CourseFeeAmount,
			CourseFeeFrequency:   freq,
			CourseDurationMonths: s.CourseDurationMonths,
			CourseIsActive:       true,
		})
	}

	if len(rows) > 0 {
		if err := db.Create(&rows).Error; err != nil {
			log.Fatalf("[SEED] insert courses failed: %v", err)
		}
	}
	log.Printf("[SEED] courses: %d inserted, %d skipped", len(rows), len(seeds)-len(rows))
}
