package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/ports"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	invrules "github.com/jhoicas/ventas-api/internal/domain/inventory"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/jhoicas/ventas-api/pkg/logger"
)

// DefaultHistoryWindow ventana del historial cuando no se envía fecha de inicio.
const DefaultHistoryWindow = 7 * 24 * time.Hour

// UseCase libro de inventario: entradas de stock, estado actual, historial y la salida
// por venta (DecrementForSale), que corre dentro de la transacción del caller.
type UseCase struct {
	txRunner      repository.TxRunner
	inventoryRepo repository.InventoryRepository
	operationRepo repository.InventoryOperationRepository
	publisher     ports.EventPublisher
	log           *logger.Logger
	lowStockLimit int
	now           func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner repository.TxRunner,
	inventoryRepo repository.InventoryRepository,
	operationRepo repository.InventoryOperationRepository,
	publisher ports.EventPublisher,
	log *logger.Logger,
	lowStockLimit int,
) *UseCase {
	if lowStockLimit <= 0 {
		lowStockLimit = invrules.DefaultLowStockLimit
	}
	return &UseCase{
		txRunner:      txRunner,
		inventoryRepo: inventoryRepo,
		operationRepo: operationRepo,
		publisher:     publisher,
		log:           log,
		lowStockLimit: lowStockLimit,
		now:           time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// LowStockLimit devuelve el umbral de stock bajo configurado.
func (uc *UseCase) LowStockLimit() int { return uc.lowStockLimit }

// AddStock suma unidades al inventario del producto. La primera entrada crea la fila de
// inventario sin registrar historial; las siguientes incrementan y agregan una operación "add".
func (uc *UseCase) AddStock(ctx context.Context, productSKU string, quantity int) error {
	sku := strings.TrimSpace(productSKU)
	if sku == "" || quantity <= 0 {
		return domain.Errorf(domain.ErrInvalidInput, "product sku and stock are required")
	}
	if quantity > invrules.MaxStock {
		return domain.Errorf(domain.ErrInvalidInput, "stock can not exceed %d units", invrules.MaxStock)
	}
	now := uc.now()

	var product *entity.Product
	var stock int
	err := uc.txRunner.Run(ctx, func(repos repository.TxRepos) error {
		var err error
		product, err = repos.Products.GetBySKU(ctx, sku)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.Errorf(domain.ErrNotFound, "Product not found")
		}

		// Bloquea la fila de inventario (SELECT FOR UPDATE) antes de leer-modificar-escribir
		inv, err := repos.Inventory.GetForUpdate(ctx, product.ID)
		if err != nil {
			return err
		}
		if inv == nil {
			created, err := repos.Inventory.CreateIfAbsent(ctx, &entity.Inventory{
				ProductID: product.ID,
				Stock:     quantity,
				UpdatedAt: now,
			})
			if err != nil {
				return err
			}
			if created {
				stock = quantity
				return nil
			}
			// Otra transacción creó la fila primero: seguir como incremento normal
			inv, err = repos.Inventory.GetForUpdate(ctx, product.ID)
			if err != nil {
				return err
			}
			if inv == nil {
				return fmt.Errorf("inventario de %s no disponible", sku)
			}
		}

		newStock, err := invrules.Increase(inv.Stock, quantity)
		if err != nil {
			return err
		}
		inv.Stock = newStock
		inv.UpdatedAt = now
		if err := repos.Inventory.UpdateStock(ctx, inv); err != nil {
			return err
		}
		stock = newStock
		return repos.Operations.Create(ctx, &entity.InventoryOperation{
			ProductID: product.ID,
			Operation: entity.OperationAdd,
			Quantity:  quantity,
			Date:      now,
		})
	})
	if err != nil {
		return err
	}

	uc.publish(ctx, ports.InventoryEvent{
		Type:        ports.EventStockAdded,
		ProductSKU:  product.SKU,
		ProductName: product.Name,
		Quantity:    quantity,
		Stock:       stock,
		Timestamp:   now,
	})
	return nil
}

// DecrementForSale descuenta quantity del stock del producto y registra la operación "remove".
// Usa los repositorios de la transacción del caller (la venta); no hace Commit ni Rollback.
// Devuelve el stock restante.
func (uc *UseCase) DecrementForSale(
	ctx context.Context,
	repos repository.TxRepos,
	productID int64,
	quantity int,
	now time.Time,
) (int, error) {
	inv, err := repos.Inventory.GetForUpdate(ctx, productID)
	if err != nil {
		return 0, err
	}
	if inv == nil {
		// Sin fila de inventario el stock es cero
		return 0, domain.Errorf(domain.ErrInsufficientStock, "Not enough items in stock")
	}
	newStock, err := invrules.Decrease(inv.Stock, quantity)
	if err != nil {
		return inv.Stock, err
	}
	inv.Stock = newStock
	inv.UpdatedAt = now
	if err := repos.Inventory.UpdateStock(ctx, inv); err != nil {
		return 0, err
	}
	if err := repos.Operations.Create(ctx, &entity.InventoryOperation{
		ProductID: productID,
		Operation: entity.OperationRemove,
		Quantity:  quantity,
		Date:      now,
	}); err != nil {
		return 0, err
	}
	return newStock, nil
}

// GetStatus devuelve el stock de todos los productos con inventario y la marca de stock bajo.
func (uc *UseCase) GetStatus(ctx context.Context) ([]dto.StockStatusDTO, error) {
	rows, err := uc.inventoryRepo.ListStatus(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockStatusDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StockStatusDTO{
			ProductName: r.ProductName,
			Stock:       r.Stock,
			LowStock:    invrules.IsLowStock(r.Stock, uc.lowStockLimit),
		})
	}
	return out, nil
}

// GetHistory devuelve las operaciones de inventario del rango (inclusivo).
// Sin fecha de inicio se usan los últimos 7 días; con inicio pero sin fin es un error.
func (uc *UseCase) GetHistory(ctx context.Context, in dto.HistoryRequest) ([]dto.InventoryTrackDTO, error) {
	var from, to time.Time
	switch {
	case in.Start == nil:
		to = uc.now()
		from = to.Add(-DefaultHistoryWindow)
	case in.End == nil:
		return nil, domain.Errorf(domain.ErrInvalidInput, "end_date is required when start_date is given")
	default:
		from, to = *in.Start, *in.End
	}
	if from.After(to) {
		return nil, domain.Errorf(domain.ErrInvalidInput, "start_date can not be after end_date")
	}

	rows, err := uc.operationRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryTrackDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.InventoryTrackDTO{
			ProductName:   r.ProductName,
			ProductSKU:    r.ProductSKU,
			Units:         r.Quantity,
			Operation:     r.Operation,
			OperationDate: r.Date,
		})
	}
	return out, nil
}

// publish envía el evento sin afectar el resultado de la operación ya confirmada.
func (uc *UseCase) publish(ctx context.Context, ev ports.InventoryEvent) {
	Publish(ctx, uc.publisher, uc.log, ev)
}

// Publish completa el ID del evento y lo publica; los errores solo se registran en el log.
func Publish(ctx context.Context, publisher ports.EventPublisher, log *logger.Logger, ev ports.InventoryEvent) {
	if publisher == nil {
		return
	}
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	if err := publisher.Publish(ctx, ev); err != nil && log != nil {
		log.Warn().Err(err).
			Str("event", ev.Type).
			Str("sku", ev.ProductSKU).
			Msg("no se pudo publicar el evento")
	}
}
