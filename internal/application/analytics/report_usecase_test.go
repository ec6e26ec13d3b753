package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/analytics"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/infrastructure/memory"
)

var fixedNow = time.Date(2024, 4, 15, 12, 0, 0, 0, time.UTC)

// seedSales crea dos categorías y una venta por cada antigüedad indicada (en días).
func seedSales(t *testing.T, store *memory.Store) {
	t.Helper()
	ctx := context.Background()
	repos := store.Repos()
	products := map[string]*entity.Product{}
	for _, cat := range []string{"Bebidas", "Snacks"} {
		c := &entity.Category{Name: cat}
		require.NoError(t, repos.Categories.Create(ctx, c))
		p := &entity.Product{Name: cat + " 1", SKU: cat[:2] + "01", Price: decimal.NewFromInt(10), CategoryID: c.ID}
		require.NoError(t, repos.Products.Create(ctx, p))
		products[cat] = p
	}
	sales := []struct {
		cat  string
		days int
		qty  int
	}{
		{"Bebidas", 0, 1},
		{"Snacks", 3, 2},
		{"Bebidas", 20, 3},
		{"Snacks", 100, 4},
		{"Bebidas", 400, 5},
	}
	for _, s := range sales {
		p := products[s.cat]
		require.NoError(t, repos.Sales.Create(ctx, &entity.Sale{
			ProductID: p.ID,
			UnitPrice: p.Price,
			Quantity:  s.qty,
			SaleTime:  fixedNow.Add(-time.Duration(s.days)*24*time.Hour - time.Minute),
		}))
	}
}

func newReport(t *testing.T) *analytics.ReportUseCase {
	t.Helper()
	store := memory.NewStore()
	seedSales(t, store)
	repos := store.Repos()
	return analytics.NewReportUseCase(repos.Sales, repos.Categories).
		WithClock(func() time.Time { return fixedNow })
}

func TestGetTimedSales_Intervals(t *testing.T) {
	uc := newReport(t)
	ctx := context.Background()

	cases := map[string]int{"daily": 1, "weekly": 2, "monthly": 3, "yearly": 4, "WEEKLY": 2}
	for interval, want := range cases {
		out, err := uc.GetTimedSales(ctx, interval)
		require.NoError(t, err, interval)
		assert.Len(t, out.Data, want, interval)
		assert.Equal(t, fixedNow, out.To)
	}
}

func TestGetTimedSales_InvalidInterval(t *testing.T) {
	uc := newReport(t)

	_, err := uc.GetTimedSales(context.Background(), "hourly")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "Interval value not defined. possible choices are: daily,weekly,monthly,yearly", err.Error())
}

func TestCompareSales(t *testing.T) {
	uc := newReport(t)
	ctx := context.Background()
	p1 := dto.PeriodQuery{Start: fixedNow.AddDate(0, 0, -7), End: fixedNow}
	p2 := dto.PeriodQuery{Start: fixedNow.AddDate(0, 0, -30), End: fixedNow.AddDate(0, 0, -7)}

	out, err := uc.CompareSales(ctx, p1, p2)
	require.NoError(t, err)
	assert.Len(t, out.Period1, 2)
	assert.Len(t, out.Period2, 1)
	assert.Empty(t, out.Category1)

	p1.Category, p2.Category = "Snacks", "Bebidas"
	out, err = uc.CompareSales(ctx, p1, p2)
	require.NoError(t, err)
	require.Len(t, out.Period1, 1)
	assert.Equal(t, 2, out.Period1[0].Quantity)
	require.Len(t, out.Period2, 1)
	assert.Equal(t, 3, out.Period2[0].Quantity)
	assert.Equal(t, "Snacks", out.Category1)
	assert.Equal(t, "Bebidas", out.Category2)
}

func TestCompareSales_CategoryRules(t *testing.T) {
	uc := newReport(t)
	ctx := context.Background()
	p1 := dto.PeriodQuery{Start: fixedNow.AddDate(0, 0, -7), End: fixedNow, Category: "Bebidas"}
	p2 := dto.PeriodQuery{Start: fixedNow.AddDate(0, 0, -7), End: fixedNow}

	_, err := uc.CompareSales(ctx, p1, p2)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "Cant compare without category set", err.Error())

	p2.Category = "Lacteos"
	_, err = uc.CompareSales(ctx, p1, p2)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	p2.Category = "Bebidas"
	out, err := uc.CompareSales(ctx, p1, p2)
	require.NoError(t, err)
	assert.Equal(t, out.Period1, out.Period2)
}

// Nombrar la misma categoría en ambos lados es válido: cada período se filtra por separado.
func TestCompareSales_SameCategoryBothSides(t *testing.T) {
	uc := newReport(t)
	ctx := context.Background()
	p1 := dto.PeriodQuery{Start: fixedNow.AddDate(0, 0, -7), End: fixedNow, Category: "Bebidas"}
	p2 := dto.PeriodQuery{Start: fixedNow.AddDate(0, 0, -30), End: fixedNow.AddDate(0, 0, -7), Category: "Bebidas"}

	out, err := uc.CompareSales(ctx, p1, p2)
	require.NoError(t, err)
	assert.Equal(t, "Bebidas", out.Category1)
	assert.Equal(t, "Bebidas", out.Category2)
	require.Len(t, out.Period1, 1)
	assert.Equal(t, 1, out.Period1[0].Quantity)
	require.Len(t, out.Period2, 1)
	assert.Equal(t, 3, out.Period2[0].Quantity)
}

func TestSummarize(t *testing.T) {
	uc := newReport(t)
	ctx := context.Background()

	out, err := uc.Summarize(ctx, fixedNow.AddDate(0, 0, -30), fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 3, out.SalesCount)
	assert.Equal(t, 6, out.UnitsSold)
	assert.True(t, out.Revenue.Equal(decimal.NewFromInt(60)))

	empty, err := uc.Summarize(ctx, fixedNow.AddDate(-5, 0, 0), fixedNow.AddDate(-4, 0, 0))
	require.NoError(t, err)
	assert.Zero(t, empty.SalesCount)
	assert.True(t, empty.Revenue.IsZero())

	_, err = uc.Summarize(ctx, fixedNow, fixedNow.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
