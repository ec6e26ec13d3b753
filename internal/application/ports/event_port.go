package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de evento publicados por el inventario y las ventas.
const (
	EventStockAdded    = "inventory.stock_added"
	EventLowStock      = "inventory.low_stock"
	EventSaleCompleted = "sale.completed"
)

// InventoryEvent evento de dominio emitido después de confirmar la transacción.
type InventoryEvent struct {
	ID          string           `json:"id"`
	Type        string           `json:"type"`
	ProductSKU  string           `json:"product_sku"`
	ProductName string           `json:"product_name"`
	Quantity    int              `json:"quantity"`
	Stock       int              `json:"stock"`
	InvoiceNo   int64            `json:"invoice_no,omitempty"`
	Total       *decimal.Decimal `json:"total,omitempty"`
	Timestamp   time.Time        `json:"timestamp"`
}

// EventPublisher puerto de salida para eventos (Kafka o no-op).
// Un error aquí nunca revierte la operación que originó el evento.
type EventPublisher interface {
	Publish(ctx context.Context, event InventoryEvent) error
}
