package repository

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create asigna el ID generado. Devuelve domain.ErrDuplicateSKU si el SKU ya existe.
	Create(ctx context.Context, product *entity.Product) error
	// GetBySKU devuelve (nil, nil) si no existe.
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
}
