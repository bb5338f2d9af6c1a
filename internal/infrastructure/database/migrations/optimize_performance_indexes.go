package migrations

import (
	"log/slog"

	"gorm.io/gorm"
)

// OptimizePerformanceIndexes adiciona índices específicos do Postgres.
// Em outros dialetos (SQLite nos testes) não faz nada.
func OptimizePerformanceIndexes(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}

	indexes := []string{
		// BRIN para consultas por período (inserções em ordem de criação)
		"CREATE INDEX IF NOT EXISTS idx_survey_responses_created_at_brin ON survey_responses USING BRIN (created_at)",
		// Respostas com escola digitada ("Other")
		"CREATE INDEX IF NOT EXISTS idx_survey_responses_other_school ON survey_responses (transaction_date) WHERE school_id IS NULL",
	}

	for _, idx := range indexes {
		if err := db.Exec(idx).Error; err != nil {
			return err
		}
	}

	slog.Info("performance indexes ready")
	return nil
}
