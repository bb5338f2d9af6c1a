package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/entities"
)

type SchoolRepository interface {
	Create(ctx context.Context, school *entities.School) error
	Rename(ctx context.Context, id uint, name string) (*entities.School, error)
	SoftDelete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*entities.School, error)
	FindByName(ctx context.Context, name string) (*entities.School, error)
	GetSchools(ctx context.Context, includeDeleted bool) ([]entities.School, error)
}

type schoolRepository struct {
	db *gorm.DB
}

func NewSchoolRepository(db *gorm.DB) SchoolRepository {
	return &schoolRepository{db}
}

func (r *schoolRepository) Create(ctx context.Context, school *entities.School) error {
	if err := r.db.WithContext(ctx).Create(school).Error; err != nil {
		return fmt.Errorf("failed to create school: %w", err)
	}
	return nil
}

func (r *schoolRepository) Rename(ctx context.Context, id uint, name string) (*entities.School, error) {
	school, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(school).Update("name", name).Error; err != nil {
		return nil, fmt.Errorf("failed to rename school %d: %w", id, err)
	}
	school.Name = name
	return school, nil
}

// SoftDelete marca deleted_at; respostas existentes continuam referenciando a escola
func (r *schoolRepository) SoftDelete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entities.School{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete school %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindByID busca apenas escolas ativas
func (r *schoolRepository) FindByID(ctx context.Context, id uint) (*entities.School, error) {
	var school entities.School
	err := r.db.WithContext(ctx).First(&school, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find school %d: %w", id, err)
	}
	return &school, nil
}

// FindByName busca inclusive escolas excluídas, já que o nome é único na tabela
func (r *schoolRepository) FindByName(ctx context.Context, name string) (*entities.School, error) {
	var school entities.School
	err := r.db.WithContext(ctx).Unscoped().Where("name = ?", name).First(&school).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find school by name: %w", err)
	}
	return &school, nil
}

func (r *schoolRepository) GetSchools(ctx context.Context, includeDeleted bool) ([]entities.School, error) {
	var schools []entities.School

	query := r.db.WithContext(ctx).Model(&entities.School{})
	if includeDeleted {
		query = query.Unscoped()
	}

	if err := query.Order("name ASC").Find(&schools).Error; err != nil {
		return nil, fmt.Errorf("failed to list schools: %w", err)
	}
	return schools, nil
}
