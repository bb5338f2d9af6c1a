package migrations

import (
	"gorm.io/gorm"

	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/entities"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&entities.School{}, &entities.SurveyResponse{})
}
