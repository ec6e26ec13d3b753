package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// CategoryUseCase alta y listado de categorías.
type CategoryUseCase struct {
	txRunner repository.TxRunner
	repo     repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(txRunner repository.TxRunner, repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{txRunner: txRunner, repo: repo}
}

// Create crea una categoría. El nombre es obligatorio y único.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.AddCategoryRequest) (*dto.CategoryDTO, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Errorf(domain.ErrInvalidInput, "no name was provided")
	}
	category := &entity.Category{Name: name, Description: in.Description}

	err := uc.txRunner.Run(ctx, func(repos repository.TxRepos) error {
		existing, err := repos.Categories.GetByName(ctx, name)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.Errorf(domain.ErrDuplicateName, "Category already present")
		}
		return repos.Categories.Create(ctx, category)
	})
	if err != nil {
		return nil, err
	}
	return &dto.CategoryDTO{Name: category.Name, Description: category.Description}, nil
}

// List lista todas las categorías.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryDTO, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryDTO, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategoryDTO{Name: c.Name, Description: c.Description})
	}
	return out, nil
}
