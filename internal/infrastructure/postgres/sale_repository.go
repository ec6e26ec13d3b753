package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleViewSelect = `
	SELECT s.id, p.name, p.sku, s.quantity, s.unit_price, s.sale_time
	FROM sales s
	JOIN products p ON p.id = s.product_id`

// Create inserta la venta; el ID generado es el número de factura.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO sales (product_id, unit_price, quantity, sale_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		s.ProductID, s.UnitPrice, s.Quantity, s.SaleTime,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// Query arma la consulta según los filtros presentes (SKU, categoría, ambos o ninguno).
func (r *SaleRepo) Query(ctx context.Context, f repository.SaleFilter) ([]repository.SaleView, error) {
	var sb strings.Builder
	sb.WriteString(saleViewSelect)
	if f.CategoryName != "" {
		sb.WriteString(`
	JOIN categories c ON c.id = p.category_id`)
	}
	sb.WriteString(`
	WHERE s.sale_time BETWEEN $1 AND $2`)
	args := []any{f.From, f.To}
	if f.ProductSKU != "" {
		args = append(args, f.ProductSKU)
		fmt.Fprintf(&sb, " AND p.sku = $%d", len(args))
	}
	if f.CategoryName != "" {
		args = append(args, f.CategoryName)
		fmt.Fprintf(&sb, " AND c.name = $%d", len(args))
	}
	sb.WriteString(" ORDER BY s.sale_time, s.id")

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query sales: %w", err)
	}
	defer rows.Close()
	list := []repository.SaleView{}
	for rows.Next() {
		var v repository.SaleView
		if err := rows.Scan(&v.InvoiceNo, &v.ProductName, &v.ProductSKU, &v.Quantity, &v.UnitPrice, &v.SaleTime); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// GetView obtiene una venta por número de factura.
func (r *SaleRepo) GetView(ctx context.Context, invoiceNo int64) (*repository.SaleView, error) {
	var v repository.SaleView
	err := r.q.QueryRow(ctx, saleViewSelect+` WHERE s.id = $1`, invoiceNo).
		Scan(&v.InvoiceNo, &v.ProductName, &v.ProductSKU, &v.Quantity, &v.UnitPrice, &v.SaleTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &v, nil
}

// Summarize agrega las ventas del período. COALESCE devuelve cero si no hay ventas.
func (r *SaleRepo) Summarize(ctx context.Context, from, to time.Time) (repository.SalesSummary, error) {
	var count, units int64
	var s repository.SalesSummary
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(quantity), 0),
		       COALESCE(SUM(unit_price * quantity), 0)
		FROM sales
		WHERE sale_time BETWEEN $1 AND $2`, from, to,
	).Scan(&count, &units, &s.Revenue)
	if err != nil {
		return repository.SalesSummary{}, fmt.Errorf("summarize sales: %w", err)
	}
	s.SalesCount = int(count)
	s.UnitsSold = int(units)
	return s, nil
}
