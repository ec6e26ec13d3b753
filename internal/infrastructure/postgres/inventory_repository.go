package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// GetForUpdate obtiene el inventario del producto y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene efecto dentro de una transacción.
func (r *InventoryRepo) GetForUpdate(ctx context.Context, productID int64) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := r.q.QueryRow(ctx, `
		SELECT id, product_id, stock, updated_at
		FROM inventory WHERE product_id = $1
		FOR UPDATE`, productID,
	).Scan(&inv.ID, &inv.ProductID, &inv.Stock, &inv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory for update: %w", err)
	}
	return &inv, nil
}

// CreateIfAbsent inserta la fila de inventario. Si otra transacción ya la creó
// (ON CONFLICT) no inserta nada y devuelve false.
func (r *InventoryRepo) CreateIfAbsent(ctx context.Context, inv *entity.Inventory) (bool, error) {
	err := r.q.QueryRow(ctx, `
		INSERT INTO inventory (product_id, stock, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (product_id) DO NOTHING
		RETURNING id`,
		inv.ProductID, inv.Stock, inv.UpdatedAt,
	).Scan(&inv.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("insert inventory: %w", err)
	}
	return true, nil
}

// UpdateStock guarda el stock y la fecha de actualización.
func (r *InventoryRepo) UpdateStock(ctx context.Context, inv *entity.Inventory) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE inventory SET stock = $2, updated_at = $3 WHERE product_id = $1`,
		inv.ProductID, inv.Stock, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update inventory: producto %d sin inventario", inv.ProductID)
	}
	return nil
}

// ListStatus lista el stock de cada producto con inventario.
func (r *InventoryRepo) ListStatus(ctx context.Context) ([]repository.StockStatus, error) {
	rows, err := r.q.Query(ctx, `
		SELECT p.name, p.sku, i.stock
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		ORDER BY i.id`)
	if err != nil {
		return nil, fmt.Errorf("list inventory status: %w", err)
	}
	defer rows.Close()
	var list []repository.StockStatus
	for rows.Next() {
		var s repository.StockStatus
		if err := rows.Scan(&s.ProductName, &s.ProductSKU, &s.Stock); err != nil {
			return nil, fmt.Errorf("scan inventory status: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
