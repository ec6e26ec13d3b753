package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto vendible. El SKU es único y no cambia después de crearse.
// El stock no vive aquí: se maneja en Inventory.
type Product struct {
	ID         int64
	Name       string
	SKU        string
	Price      decimal.Decimal // precio unitario de venta (> 0)
	CategoryID int64
	CreatedAt  time.Time
}
