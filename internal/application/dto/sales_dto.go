package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptDTO recibo devuelto por POST /sale/make_sale.
type ReceiptDTO struct {
	InvoiceNo int64           `json:"invoice_no"`
	Item      string          `json:"item"`
	Unit      int             `json:"unit"`
	Price     decimal.Decimal `json:"price"`
	Total     decimal.Decimal `json:"total"`
}

// SaleViewDTO una venta en los reportes.
type SaleViewDTO struct {
	InvoiceNo   int64           `json:"invoice_no"`
	Item        string          `json:"item"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
	InvoiceTime time.Time       `json:"invoice_time"`
}

// SalesQuery filtro de GET /sales/get_data. Start y End son inclusivos.
type SalesQuery struct {
	Start      time.Time
	End        time.Time
	ProductSKU string
	Category   string
}

// PeriodQuery un lado de la comparación de períodos.
type PeriodQuery struct {
	Start    time.Time
	End      time.Time
	Category string
}

// ComparisonDTO respuesta de GET /sales/compare_data.
type ComparisonDTO struct {
	Category1 string        `json:"category1"`
	Period1   []SaleViewDTO `json:"period1"`
	Category2 string        `json:"category2"`
	Period2   []SaleViewDTO `json:"period2"`
}

// TimedSalesDTO respuesta de GET /sales/get_timed_data.
type TimedSalesDTO struct {
	Interval string        `json:"interval"`
	From     time.Time     `json:"from"`
	To       time.Time     `json:"to"`
	Data     []SaleViewDTO `json:"data"`
}

// SalesSummaryDTO agregados de GET /sales/summary.
type SalesSummaryDTO struct {
	From       time.Time       `json:"from"`
	To         time.Time       `json:"to"`
	SalesCount int             `json:"sales_count"`
	UnitsSold  int             `json:"units_sold"`
	Revenue    decimal.Decimal `json:"revenue"`
}
