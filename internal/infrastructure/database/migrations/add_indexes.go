package migrations

import (
	"gorm.io/gorm"
)

// AddIndexes cria os índices compostos usados pelos filtros do dashboard
func AddIndexes(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_survey_responses_created_id ON survey_responses (created_at, id)",
		"CREATE INDEX IF NOT EXISTS idx_survey_responses_school_date ON survey_responses (school_id, transaction_date)",
		"CREATE INDEX IF NOT EXISTS idx_survey_responses_type_date ON survey_responses (transaction_type, transaction_date)",
		"CREATE INDEX IF NOT EXISTS idx_survey_responses_rating_date ON survey_responses (satisfaction_rating, transaction_date)",
	}

	for _, idx := range indexes {
		if err := db.Exec(idx).Error; err != nil {
			return err
		}
	}
	return nil
}
