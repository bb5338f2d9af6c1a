package handlers

import (
	"github.com/PavaniTiago/satisfaction-survey-api/internal/application/usecases"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/infrastructure/metrics"
)

// Handlers agrupa os handlers HTTP da API
type Handlers struct {
	Survey    *SurveyHandler
	Dashboard *DashboardHandler
	Export    *ExportHandler
	School    *SchoolHandler
}

func NewHandlers(useCases *usecases.UseCases, m *metrics.Metrics) *Handlers {
	return &Handlers{
		Survey:    NewSurveyHandler(useCases.Surveys, useCases.Schools, m),
		Dashboard: NewDashboardHandler(useCases.Dashboard),
		Export:    NewExportHandler(useCases.Export, m),
		School:    NewSchoolHandler(useCases.Schools),
	}
}
