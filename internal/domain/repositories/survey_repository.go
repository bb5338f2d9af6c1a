package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/entities"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/filters"
)

// SurveyRepository é o armazenamento de respostas de satisfação
type SurveyRepository interface {
	Create(ctx context.Context, survey *entities.SurveyResponse) error
	FindByID(ctx context.Context, id string) (*entities.SurveyResponse, error)
	List(ctx context.Context, criteria filters.Criteria, page, limit int) ([]entities.SurveyResponse, int64, error)
	Find(ctx context.Context, criteria filters.Criteria, order filters.Order, limit int) ([]entities.SurveyResponse, error)
	Tally(ctx context.Context, criteria filters.Criteria) (entities.RatingTally, error)
	UpdateStatus(ctx context.Context, id, status string) (*entities.SurveyResponse, error)
}

type surveyRepository struct {
	db *gorm.DB
}

// NewSurveyRepository cria uma nova instância de SurveyRepository
func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

func (r *surveyRepository) Create(ctx context.Context, survey *entities.SurveyResponse) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(survey).Error; err != nil {
		return fmt.Errorf("failed to insert survey response: %w", err)
	}
	return nil
}

func (r *surveyRepository) FindByID(ctx context.Context, id string) (*entities.SurveyResponse, error) {
	var survey entities.SurveyResponse
	err := r.db.WithContext(ctx).Scopes(preloadSchool).Where("id = ?", id).First(&survey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find survey response %s: %w", id, err)
	}
	return &survey, nil
}

// List retorna uma página do conjunto filtrado, mais recentes primeiro, com o total
func (r *surveyRepository) List(ctx context.Context, criteria filters.Criteria, page, limit int) ([]entities.SurveyResponse, int64, error) {
	page, limit = normalizePage(page, limit)

	var total int64
	query := r.db.WithContext(ctx).Model(&entities.SurveyResponse{}).Scopes(criteriaScope(criteria))
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count survey responses: %w", err)
	}

	var surveys []entities.SurveyResponse
	err := r.db.WithContext(ctx).
		Scopes(criteriaScope(criteria), orderScope(filters.NewestFirst), preloadSchool).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&surveys).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list survey responses: %w", err)
	}

	return surveys, total, nil
}

// Find retorna o conjunto filtrado completo na ordem pedida. limit <= 0 não limita.
func (r *surveyRepository) Find(ctx context.Context, criteria filters.Criteria, order filters.Order, limit int) ([]entities.SurveyResponse, error) {
	query := r.db.WithContext(ctx).Scopes(criteriaScope(criteria), orderScope(order), preloadSchool)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var surveys []entities.SurveyResponse
	if err := query.Find(&surveys).Error; err != nil {
		return nil, fmt.Errorf("failed to find survey responses: %w", err)
	}
	return surveys, nil
}

// Tally conta as respostas filtradas agrupadas por avaliação em uma única consulta
func (r *surveyRepository) Tally(ctx context.Context, criteria filters.Criteria) (entities.RatingTally, error) {
	var rows []struct {
		SatisfactionRating string
		Count              int64
	}

	err := r.db.WithContext(ctx).
		Model(&entities.SurveyResponse{}).
		Scopes(criteriaScope(criteria)).
		Select("satisfaction_rating, COUNT(*) AS count").
		Group("satisfaction_rating").
		Scan(&rows).Error
	if err != nil {
		return entities.RatingTally{}, fmt.Errorf("failed to tally survey responses: %w", err)
	}

	var tally entities.RatingTally
	for _, row := range rows {
		tally.Add(entities.SatisfactionRating(row.SatisfactionRating), row.Count)
	}
	return tally, nil
}

// UpdateStatus altera apenas o status (correção administrativa)
func (r *surveyRepository) UpdateStatus(ctx context.Context, id, status string) (*entities.SurveyResponse, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.SurveyResponse{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update survey status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}
