package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// SKUGenerator genera SKUs cuando el cliente no envía uno (ver pkg/token).
type SKUGenerator interface {
	Generate() (string, error)
}

// ProductUseCase alta, listado y búsqueda de productos. El stock se maneja en el inventario.
type ProductUseCase struct {
	txRunner repository.TxRunner
	repo     repository.ProductRepository
	skuGen   SKUGenerator
	now      func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner repository.TxRunner, repo repository.ProductRepository, skuGen SKUGenerator) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, repo: repo, skuGen: skuGen, now: time.Now}
}

// Create crea un producto dentro de una categoría existente.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.AddProductRequest) (*dto.ProductDTO, error) {
	name := strings.TrimSpace(in.Name)
	categoryName := strings.TrimSpace(in.Category)
	sku := strings.TrimSpace(in.SKU)
	if name == "" || categoryName == "" || in.Price.IsZero() {
		return nil, domain.Errorf(domain.ErrInvalidInput, "No name/price/category was provided")
	}
	if !in.Price.IsPositive() {
		return nil, domain.Errorf(domain.ErrInvalidInput, "price must be greater than zero")
	}
	if sku == "" {
		generated, err := uc.skuGen.Generate()
		if err != nil {
			return nil, fmt.Errorf("generar sku: %w", err)
		}
		sku = generated
	}

	product := &entity.Product{
		Name:      name,
		SKU:       sku,
		Price:     in.Price,
		CreatedAt: uc.now(),
	}
	err := uc.txRunner.Run(ctx, func(repos repository.TxRepos) error {
		category, err := repos.Categories.GetByName(ctx, categoryName)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.Errorf(domain.ErrNotFound, "No category Found")
		}
		existing, err := repos.Products.GetBySKU(ctx, sku)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.Errorf(domain.ErrDuplicateSKU, "Product already present")
		}
		product.CategoryID = category.ID
		return repos.Products.Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	return toProductDTO(product), nil
}

// List lista todos los productos (nombre, sku y precio).
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductDTO, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductDTO, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductDTO(p))
	}
	return out, nil
}

// FindBySKU devuelve el producto o nil si no existe.
func (uc *ProductUseCase) FindBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	return uc.repo.GetBySKU(ctx, strings.TrimSpace(sku))
}

func toProductDTO(p *entity.Product) *dto.ProductDTO {
	return &dto.ProductDTO{Name: p.Name, SKU: p.SKU, Price: p.Price}
}
