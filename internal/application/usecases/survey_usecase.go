package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/entities"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/filters"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/repositories"
)

// SurveyUseCase implementa a intake pública e a consulta administrativa de respostas
type SurveyUseCase struct {
	surveyRepo repositories.SurveyRepository
	schoolRepo repositories.SchoolRepository
	engine     *filters.Engine
	validator  *IntakeValidator
	datePolicy filters.DatePolicy
}

// NewSurveyUseCase cria uma nova instância de SurveyUseCase
func NewSurveyUseCase(
	surveyRepo repositories.SurveyRepository,
	schoolRepo repositories.SchoolRepository,
	engine *filters.Engine,
	validator *IntakeValidator,
) *SurveyUseCase {
	return &SurveyUseCase{
		surveyRepo: surveyRepo,
		schoolRepo: schoolRepo,
		engine:     engine,
		validator:  validator,
		datePolicy: filters.PolicyTransactionOrSubmission,
	}
}

// WithDatePolicy troca a política de data usada pela lista
func (u *SurveyUseCase) WithDatePolicy(policy filters.DatePolicy) *SurveyUseCase {
	u.datePolicy = policy
	return u
}

// Submit valida e grava uma nova resposta com status "submitted".
// Falhas de validação retornam *ValidationError; falhas de persistência, ErrSubmissionFailed.
func (u *SurveyUseCase) Submit(ctx context.Context, input SubmissionInput) (*entities.SurveyResponse, error) {
	input = input.Normalized()

	fields, err := u.validateInput(ctx, input)
	if err != nil {
		slog.Error("failed to validate survey submission", "error", err)
		return nil, ErrSubmissionFailed
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	survey := input.toEntity()
	if err := u.surveyRepo.Create(ctx, survey); err != nil {
		slog.Error("failed to persist survey submission",
			"error", err,
			"transaction_type", input.TransactionType,
			"satisfaction_rating", input.SatisfactionRating,
			"transaction_date", input.TransactionDate,
		)
		return nil, ErrSubmissionFailed
	}

	slog.Info("survey submitted", "id", survey.ID, "satisfaction_rating", survey.SatisfactionRating)

	stored, err := u.surveyRepo.FindByID(ctx, survey.ID)
	if err != nil {
		slog.Warn("failed to reload submitted survey", "id", survey.ID, "error", err)
		return survey, nil
	}
	return stored, nil
}

// ValidateStep validates only the fields collected by one step of the public form.
func (u *SurveyUseCase) ValidateStep(ctx context.Context, step int, input SubmissionInput) error {
	stepFields, ok := StepFields(step)
	if !ok {
		return &ValidationError{Fields: map[string]string{"step": fmt.Sprintf("Unknown form step %d.", step)}}
	}

	fields, err := u.validateInput(ctx, input.Normalized())
	if err != nil {
		slog.Error("failed to validate survey step", "step", step, "error", err)
		return ErrSubmissionFailed
	}

	stepErrors := make(map[string]string)
	for _, name := range stepFields {
		if msg, bad := fields[name]; bad {
			stepErrors[name] = msg
		}
	}
	if len(stepErrors) > 0 {
		return &ValidationError{Fields: stepErrors}
	}
	return nil
}

// validateInput runs the field rules and checks the referenced school is active.
func (u *SurveyUseCase) validateInput(ctx context.Context, input SubmissionInput) (map[string]string, error) {
	fields := u.validator.Validate(input)

	if _, bad := fields["school_id"]; !bad && input.SchoolID != nil {
		_, err := u.schoolRepo.FindByID(ctx, *input.SchoolID)
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			fields["school_id"] = "The selected school id is invalid."
		case err != nil:
			return nil, err
		}
	}
	return fields, nil
}

// List retorna uma página das respostas filtradas, mais recentes primeiro
func (u *SurveyUseCase) List(ctx context.Context, f filters.Filter, page, limit int) ([]entities.SurveyResponse, int64, error) {
	criteria := u.engine.Resolve(f, u.datePolicy)
	return u.surveyRepo.List(ctx, criteria, page, limit)
}

// Get busca uma resposta pelo id
func (u *SurveyUseCase) Get(ctx context.Context, id string) (*entities.SurveyResponse, error) {
	return u.surveyRepo.FindByID(ctx, id)
}

// UpdateStatus aplica a correção administrativa de status
func (u *SurveyUseCase) UpdateStatus(ctx context.Context, id, status string) (*entities.SurveyResponse, error) {
	valid := false
	for _, s := range entities.Statuses {
		if s == status {
			valid = true
			break
		}
	}
	if !valid {
		return nil, &ValidationError{Fields: map[string]string{"status": "The selected status is invalid."}}
	}
	return u.surveyRepo.UpdateStatus(ctx, id, status)
}
