package usecases

import (
	"context"
	"fmt"

	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/filters"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/repositories"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/infrastructure/export"
)

// ExportFile é o relatório pronto para download
type ExportFile struct {
	Filename    string
	ContentType string
	Rows        int
	Data        []byte
}

// ExportUseCase reaplica o filtro (por padrão, política transaction_date) e gera a planilha
type ExportUseCase struct {
	surveyRepo repositories.SurveyRepository
	engine     *filters.Engine
	renderer   *export.Renderer
	datePolicy filters.DatePolicy
}

func NewExportUseCase(surveyRepo repositories.SurveyRepository, engine *filters.Engine, renderer *export.Renderer) *ExportUseCase {
	return &ExportUseCase{
		surveyRepo: surveyRepo,
		engine:     engine,
		renderer:   renderer,
		datePolicy: filters.PolicyTransactionDate,
	}
}

// WithDatePolicy troca a política de data usada na exportação
func (u *ExportUseCase) WithDatePolicy(policy filters.DatePolicy) *ExportUseCase {
	u.datePolicy = policy
	return u
}

// Export gera o relatório das respostas filtradas, mais recentes primeiro
func (u *ExportUseCase) Export(ctx context.Context, f filters.Filter, variant export.Variant) (*ExportFile, error) {
	criteria := u.engine.Resolve(f, u.datePolicy)

	records, err := u.surveyRepo.Find(ctx, criteria, filters.NewestFirst, 0)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar respostas para exportação: %w", err)
	}

	data, err := u.renderer.Render(variant, records)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar planilha: %w", err)
	}

	return &ExportFile{
		Filename:    fmt.Sprintf("survey-responses-%s-%s.xlsx", variant, u.engine.Now().Format("20060102-150405")),
		ContentType: export.ContentType,
		Rows:        len(records),
		Data:        data,
	}, nil
}
