package repository

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// StockStatus fila de lectura del estado de inventario (inventario + nombre del producto).
type StockStatus struct {
	ProductName string
	ProductSKU  string
	Stock       int
}

// InventoryRepository define el puerto para el stock actual por producto.
// Las escrituras se hacen siempre dentro de una transacción (ver TxRunner).
type InventoryRepository interface {
	// GetForUpdate obtiene la fila y la bloquea (SELECT FOR UPDATE). (nil, nil) si no existe.
	GetForUpdate(ctx context.Context, productID int64) (*entity.Inventory, error)
	// CreateIfAbsent inserta la fila si el producto aún no tiene inventario.
	// Devuelve false si otra transacción ya la creó.
	CreateIfAbsent(ctx context.Context, inv *entity.Inventory) (bool, error)
	// UpdateStock guarda el nuevo valor de Stock.
	UpdateStock(ctx context.Context, inv *entity.Inventory) error
	// ListStatus lista el stock de todos los productos con inventario.
	ListStatus(ctx context.Context) ([]StockStatus, error)
}
