package ports

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// ReceiptPDFGenerator genera la representación gráfica (PDF) de una venta.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, storeName string, sale repository.SaleView) ([]byte, error)
}
