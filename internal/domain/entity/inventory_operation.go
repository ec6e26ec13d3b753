package entity

import "time"

// Tipos de operación de inventario.
const (
	OperationAdd    = "add"    // entrada manual de stock
	OperationRemove = "remove" // salida por venta
)

// InventoryOperation registro histórico (append-only) de un cambio de stock.
type InventoryOperation struct {
	ID        int64
	ProductID int64
	Operation string // add, remove
	Quantity  int    // siempre positivo; el signo lo da Operation
	Date      time.Time
}
