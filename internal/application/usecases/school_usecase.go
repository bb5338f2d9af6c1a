package usecases

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/entities"
	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/repositories"
)

// SchoolUseCase administra o cadastro de escolas (HEIs)
type SchoolUseCase struct {
	schoolRepo repositories.SchoolRepository
}

func NewSchoolUseCase(schoolRepo repositories.SchoolRepository) *SchoolUseCase {
	return &SchoolUseCase{schoolRepo: schoolRepo}
}

func (u *SchoolUseCase) GetSchools(ctx context.Context, includeDeleted bool) ([]entities.School, error) {
	return u.schoolRepo.GetSchools(ctx, includeDeleted)
}

func (u *SchoolUseCase) Create(ctx context.Context, name string) (*entities.School, error) {
	name, err := u.checkName(ctx, name, 0)
	if err != nil {
		return nil, err
	}

	school := &entities.School{Name: name}
	if err := u.schoolRepo.Create(ctx, school); err != nil {
		return nil, err
	}
	return school, nil
}

func (u *SchoolUseCase) Rename(ctx context.Context, id uint, name string) (*entities.School, error) {
	name, err := u.checkName(ctx, name, id)
	if err != nil {
		return nil, err
	}
	return u.schoolRepo.Rename(ctx, id, name)
}

// Delete exclui logicamente; respostas que referenciam a escola não são alteradas
func (u *SchoolUseCase) Delete(ctx context.Context, id uint) error {
	return u.schoolRepo.SoftDelete(ctx, id)
}

// checkName valida o nome e garante unicidade, inclusive contra escolas excluídas
func (u *SchoolUseCase) checkName(ctx context.Context, name string, selfID uint) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &ValidationError{Fields: map[string]string{"name": "The name field is required."}}
	}
	if utf8.RuneCountInString(name) > 255 {
		return "", &ValidationError{Fields: map[string]string{"name": "The name may not be greater than 255 characters."}}
	}

	existing, err := u.schoolRepo.FindByName(ctx, name)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return name, nil
	case err != nil:
		return "", err
	case existing.ID != selfID:
		return "", &ValidationError{Fields: map[string]string{"name": "The name has already been taken."}}
	}
	return name, nil
}
