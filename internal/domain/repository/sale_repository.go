package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// SaleFilter filtro de consulta de ventas. From y To son inclusivos.
// ProductSKU y CategoryName vacíos no filtran; si ambos vienen se combinan con AND.
type SaleFilter struct {
	From         time.Time
	To           time.Time
	ProductSKU   string
	CategoryName string
}

// SaleView venta con el nombre del producto resuelto (join en lectura).
type SaleView struct {
	InvoiceNo   int64
	ProductName string
	ProductSKU  string
	Quantity    int
	UnitPrice   decimal.Decimal
	SaleTime    time.Time
}

// Total devuelve UnitPrice * Quantity.
func (v SaleView) Total() decimal.Decimal {
	return v.UnitPrice.Mul(decimal.NewFromInt(int64(v.Quantity)))
}

// SalesSummary agregados de un período.
type SalesSummary struct {
	SalesCount int
	UnitsSold  int
	Revenue    decimal.Decimal
}

// SaleRepository define el puerto de persistencia para ventas. Las consultas son de solo lectura.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	// Query devuelve las ventas que cumplen el filtro, ordenadas por fecha e ID.
	Query(ctx context.Context, filter SaleFilter) ([]SaleView, error)
	// GetView devuelve (nil, nil) si el número de factura no existe.
	GetView(ctx context.Context, invoiceNo int64) (*SaleView, error)
	// Summarize agrega conteo, unidades e ingresos del período (ceros si no hay ventas).
	Summarize(ctx context.Context, from, to time.Time) (SalesSummary, error)
}
