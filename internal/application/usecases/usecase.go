package usecases

// UseCases agrupa todos os casos de uso expostos pela camada HTTP
type UseCases struct {
	Surveys   *SurveyUseCase
	Schools   *SchoolUseCase
	Dashboard DashboardUseCase
	Export    *ExportUseCase
}
