package repository

import (
	"context"
	"time"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// OperationView operación de inventario con los datos del producto (para el historial).
type OperationView struct {
	ProductName string
	ProductSKU  string
	Operation   string
	Quantity    int
	Date        time.Time
}

// InventoryOperationRepository define el puerto para el historial de operaciones (append-only).
type InventoryOperationRepository interface {
	Create(ctx context.Context, op *entity.InventoryOperation) error
	// ListByDateRange devuelve las operaciones con from <= fecha <= to, en orden cronológico.
	ListByDateRange(ctx context.Context, from, to time.Time) ([]OperationView, error)
}
