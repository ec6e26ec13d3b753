package dto

import "time"

// StockStatusDTO fila de GET /inventory/status.
type StockStatusDTO struct {
	ProductName string `json:"product_name"`
	Stock       int    `json:"stock"`
	LowStock    bool   `json:"low_stock"`
}

// InventoryTrackDTO fila de GET /inventory/track.
type InventoryTrackDTO struct {
	ProductName   string    `json:"product_name"`
	ProductSKU    string    `json:"product_sku"`
	Units         int       `json:"units"`
	Operation     string    `json:"operation"`
	OperationDate time.Time `json:"operation_date"`
}

// HistoryRequest rango del historial. Start nil => últimos 7 días.
type HistoryRequest struct {
	Start *time.Time
	End   *time.Time
}
