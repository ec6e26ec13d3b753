package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/inventory"
	"github.com/jhoicas/ventas-api/internal/application/ports"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	invrules "github.com/jhoicas/ventas-api/internal/domain/inventory"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/jhoicas/ventas-api/pkg/logger"
)

// StockDecrementer descuenta stock dentro de la transacción de la venta (inventory.UseCase).
type StockDecrementer interface {
	DecrementForSale(ctx context.Context, repos repository.TxRepos, productID int64, quantity int, now time.Time) (int, error)
	LowStockLimit() int
}

var _ StockDecrementer = (*inventory.UseCase)(nil)

// UseCase libro de ventas.
type UseCase struct {
	txRunner  repository.TxRunner
	saleRepo  repository.SaleRepository
	stock     StockDecrementer
	publisher ports.EventPublisher
	pdfGen    ports.ReceiptPDFGenerator
	storeName string
	log       *logger.Logger
	now       func() time.Time
}

// NewUseCase construye el caso de uso. pdfGen puede ser nil (sin recibos PDF).
func NewUseCase(
	txRunner repository.TxRunner,
	saleRepo repository.SaleRepository,
	stock StockDecrementer,
	publisher ports.EventPublisher,
	pdfGen ports.ReceiptPDFGenerator,
	storeName string,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner:  txRunner,
		saleRepo:  saleRepo,
		stock:     stock,
		publisher: publisher,
		pdfGen:    pdfGen,
		storeName: storeName,
		log:       log,
		now:       time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// MakeSale registra una venta en una sola transacción: descuenta el stock, agrega la operación
// "remove" y guarda la venta con el precio vigente del producto. Si algo falla no queda nada.
func (uc *UseCase) MakeSale(ctx context.Context, productSKU string, quantity int) (*dto.ReceiptDTO, error) {
	sku := strings.TrimSpace(productSKU)
	if sku == "" {
		return nil, domain.Errorf(domain.ErrInvalidInput, "No product sku given")
	}
	if quantity <= 0 {
		return nil, domain.Errorf(domain.ErrInvalidInput, "quantity must be greater than zero")
	}
	now := uc.now()

	var product *entity.Product
	var remaining int
	sale := &entity.Sale{Quantity: quantity, SaleTime: now}
	err := uc.txRunner.Run(ctx, func(repos repository.TxRepos) error {
		var err error
		product, err = repos.Products.GetBySKU(ctx, sku)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.Errorf(domain.ErrNotFound, "No product was found")
		}

		remaining, err = uc.stock.DecrementForSale(ctx, repos, product.ID, quantity, now)
		if err != nil {
			return err
		}

		sale.ProductID = product.ID
		sale.UnitPrice = product.Price
		return repos.Sales.Create(ctx, sale)
	})
	if err != nil {
		return nil, err
	}

	total := sale.Total()
	inventory.Publish(ctx, uc.publisher, uc.log, ports.InventoryEvent{
		Type:        ports.EventSaleCompleted,
		ProductSKU:  product.SKU,
		ProductName: product.Name,
		Quantity:    quantity,
		Stock:       remaining,
		InvoiceNo:   sale.ID,
		Total:       &total,
		Timestamp:   now,
	})
	if invrules.IsLowStock(remaining, uc.stock.LowStockLimit()) {
		inventory.Publish(ctx, uc.publisher, uc.log, ports.InventoryEvent{
			Type:        ports.EventLowStock,
			ProductSKU:  product.SKU,
			ProductName: product.Name,
			Stock:       remaining,
			Timestamp:   now,
		})
	}

	return &dto.ReceiptDTO{
		InvoiceNo: sale.ID,
		Item:      product.Name,
		Unit:      quantity,
		Price:     sale.UnitPrice,
		Total:     total,
	}, nil
}

// QuerySales devuelve las ventas del rango inclusivo, filtradas por SKU y/o categoría.
// Los filtros vacíos no aplican; si vienen ambos se combinan con AND.
func (uc *UseCase) QuerySales(ctx context.Context, q dto.SalesQuery) ([]dto.SaleViewDTO, error) {
	if err := ValidateRange(q.Start, q.End); err != nil {
		return nil, err
	}
	rows, err := uc.saleRepo.Query(ctx, repository.SaleFilter{
		From:         q.Start,
		To:           q.End,
		ProductSKU:   strings.TrimSpace(q.ProductSKU),
		CategoryName: strings.TrimSpace(q.Category),
	})
	if err != nil {
		return nil, err
	}
	return ToSaleViewDTOs(rows), nil
}

// ReceiptPDF genera el PDF del recibo de una venta existente.
func (uc *UseCase) ReceiptPDF(ctx context.Context, invoiceNo int64) ([]byte, error) {
	if uc.pdfGen == nil {
		return nil, fmt.Errorf("generador de recibos no configurado")
	}
	view, err := uc.saleRepo.GetView(ctx, invoiceNo)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "No sale was found")
	}
	return uc.pdfGen.GenerateReceiptPDF(ctx, uc.storeName, *view)
}

// ValidateRange exige ambas fechas y start <= end.
func ValidateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return domain.Errorf(domain.ErrInvalidInput, "start_date and end_date are required")
	}
	if start.After(end) {
		return domain.Errorf(domain.ErrInvalidInput, "start_date can not be after end_date")
	}
	return nil
}

// ToSaleViewDTOs convierte las filas del repositorio a la forma pública.
func ToSaleViewDTOs(rows []repository.SaleView) []dto.SaleViewDTO {
	out := make([]dto.SaleViewDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SaleViewDTO{
			InvoiceNo:   r.InvoiceNo,
			Item:        r.ProductName,
			Quantity:    r.Quantity,
			UnitPrice:   r.UnitPrice,
			Total:       r.Total(),
			InvoiceTime: r.SaleTime,
		})
	}
	return out
}
