package academics

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	model "sekolahku_backend/internals/features/academics/students/model"
)

type StudentSeed struct {
	StudentCode     string  `json:"student_code"`
	StudentFullName string  `json:"student_full_name"`
	StudentPhone    *string `json:"student_phone"`
	GuardianName    *string `json:"student_guardian_name"`
}

func SeedStudentsFromJSON(db *gorm.DB, filePath string) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("[SEED] read %s failed: %v", filePath, err)
		return
	}

	var seeds []StudentSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("[SEED] decode %s failed: %v", filePath, err)
	}

	var existing []string
	if err := db.Model(&model.Student{}).Select("student_code").Find(&existing).Error; err != nil {
		log.Fatalf("[SEED] load existing student codes failed: %v", err)
	}
	existingMap := make(map[string]bool, len(existing))
	for _, code := range existing {
		existingMap[code] = true
	}

	var rows []model.Student
	for _, s := range seeds {
		if existingMap[s.StudentCode] {
			continue
		}
		rows = append(rows, model.Student{
			StudentCode:         s.StudentCode,
			StudentFullName:     s.StudentFullName,
			StudentPhone:        s.StudentPhone,
			StudentGuardianName: s.GuardianName,
		})
	}

	if len(rows) > 0 {
		if err := db.Create(&rows).Error; err != nil {
			log.Fatalf("[SEED] insert students failed: %v", err)
		}
	}
	log.Printf("[SEED] students: %d inserted, %d skipped", len(rows), len(seeds)-len(rows))
}
