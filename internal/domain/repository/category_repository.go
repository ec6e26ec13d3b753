package repository

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	// Create asigna el ID generado. Devuelve domain.ErrDuplicateName si el nombre ya existe.
	Create(ctx context.Context, category *entity.Category) error
	// GetByName devuelve (nil, nil) si no existe.
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
}
