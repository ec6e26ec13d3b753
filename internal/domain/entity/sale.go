package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale venta confirmada. UnitPrice es una foto del precio del producto al momento de vender.
type Sale struct {
	ID        int64 // número de factura
	ProductID int64
	UnitPrice decimal.Decimal
	Quantity  int
	SaleTime  time.Time
}

// Total devuelve UnitPrice * Quantity.
func (s Sale) Total() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}
