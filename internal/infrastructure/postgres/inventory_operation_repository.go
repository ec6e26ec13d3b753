package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.InventoryOperationRepository = (*InventoryOperationRepo)(nil)

// InventoryOperationRepo historial append-only de operaciones de inventario.
type InventoryOperationRepo struct {
	q Querier
}

// NewInventoryOperationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryOperationRepository(q Querier) *InventoryOperationRepo {
	return &InventoryOperationRepo{q: q}
}

// Create registra la operación y asigna el ID generado.
func (r *InventoryOperationRepo) Create(ctx context.Context, op *entity.InventoryOperation) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO inventory_operations (product_id, operation, quantity, operation_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		op.ProductID, op.Operation, op.Quantity, op.Date,
	).Scan(&op.ID)
	if err != nil {
		return fmt.Errorf("insert inventory operation: %w", err)
	}
	return nil
}

// ListByDateRange devuelve las operaciones con from <= operation_date <= to.
func (r *InventoryOperationRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]repository.OperationView, error) {
	rows, err := r.q.Query(ctx, `
		SELECT p.name, p.sku, o.operation, o.quantity, o.operation_date
		FROM inventory_operations o
		JOIN products p ON p.id = o.product_id
		WHERE o.operation_date BETWEEN $1 AND $2
		ORDER BY o.operation_date, o.id`, from, to)
	if err != nil {
		return nil, fmt.Errorf("list inventory operations: %w", err)
	}
	defer rows.Close()
	var list []repository.OperationView
	for rows.Next() {
		var v repository.OperationView
		if err := rows.Scan(&v.ProductName, &v.ProductSKU, &v.Operation, &v.Quantity, &v.Date); err != nil {
			return nil, fmt.Errorf("scan inventory operation: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
