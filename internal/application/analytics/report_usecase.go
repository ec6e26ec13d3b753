// Package analytics contiene los reportes de ventas (solo lectura).
package analytics

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/sales"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	salesrules "github.com/jhoicas/ventas-api/internal/domain/sales"
)

// ReportUseCase ventas por intervalo, comparación de períodos y resumen.
// No escribe; delega todas las consultas en los repositorios.
type ReportUseCase struct {
	saleRepo     repository.SaleRepository
	categoryRepo repository.CategoryRepository
	now          func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(saleRepo repository.SaleRepository, categoryRepo repository.CategoryRepository) *ReportUseCase {
	return &ReportUseCase{saleRepo: saleRepo, categoryRepo: categoryRepo, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *ReportUseCase) WithClock(now func() time.Time) *ReportUseCase {
	uc.now = now
	return uc
}

// GetTimedSales devuelve las ventas de [now - intervalo, now] sin filtros.
func (uc *ReportUseCase) GetTimedSales(ctx context.Context, interval string) (*dto.TimedSalesDTO, error) {
	from, to, err := salesrules.Window(interval, uc.now())
	if err != nil {
		return nil, err
	}
	rows, err := uc.saleRepo.Query(ctx, repository.SaleFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}
	return &dto.TimedSalesDTO{
		Interval: strings.TrimSpace(interval),
		From:     from,
		To:       to,
		Data:     sales.ToSaleViewDTOs(rows),
	}, nil
}

// CompareSales consulta dos períodos independientes. Las categorías van las dos o ninguna;
// si vienen, cada una debe existir.
func (uc *ReportUseCase) CompareSales(ctx context.Context, p1, p2 dto.PeriodQuery) (*dto.ComparisonDTO, error) {
	c1 := strings.TrimSpace(p1.Category)
	c2 := strings.TrimSpace(p2.Category)
	if (c1 == "") != (c2 == "") {
		return nil, domain.Errorf(domain.ErrInvalidInput, "Cant compare without category set")
	}
	if err := sales.ValidateRange(p1.Start, p1.End); err != nil {
		return nil, err
	}
	if err := sales.ValidateRange(p2.Start, p2.End); err != nil {
		return nil, err
	}
	if c1 != "" {
		for _, name := range []string{c1, c2} {
			category, err := uc.categoryRepo.GetByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if category == nil {
				return nil, domain.Errorf(domain.ErrNotFound, "Category not found in system")
			}
		}
	}

	// Los dos períodos en paralelo
	type periodResult struct {
		rows []repository.SaleView
		err  error
	}
	ch1 := make(chan periodResult, 1)
	ch2 := make(chan periodResult, 1)
	go func() {
		rows, err := uc.saleRepo.Query(ctx, repository.SaleFilter{From: p1.Start, To: p1.End, CategoryName: c1})
		ch1 <- periodResult{rows, err}
	}()
	go func() {
		rows, err := uc.saleRepo.Query(ctx, repository.SaleFilter{From: p2.Start, To: p2.End, CategoryName: c2})
		ch2 <- periodResult{rows, err}
	}()
	r1, r2 := <-ch1, <-ch2
	if r1.err != nil {
		return nil, r1.err
	}
	if r2.err != nil {
		return nil, r2.err
	}

	return &dto.ComparisonDTO{
		Category1: c1,
		Period1:   sales.ToSaleViewDTOs(r1.rows),
		Category2: c2,
		Period2:   sales.ToSaleViewDTOs(r2.rows),
	}, nil
}

// Summarize agrega número de ventas, unidades e ingresos del rango inclusivo.
func (uc *ReportUseCase) Summarize(ctx context.Context, start, end time.Time) (*dto.SalesSummaryDTO, error) {
	if err := sales.ValidateRange(start, end); err != nil {
		return nil, err
	}
	s, err := uc.saleRepo.Summarize(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return &dto.SalesSummaryDTO{
		From:       start,
		To:         end,
		SalesCount: s.SalesCount,
		UnitsSold:  s.UnitsSold,
		Revenue:    s.Revenue,
	}, nil
}
