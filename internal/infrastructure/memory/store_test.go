package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

func seed(t *testing.T, s *Store) *entity.Product {
	t.Helper()
	ctx := context.Background()
	var p *entity.Product
	err := s.Run(ctx, func(repos repository.TxRepos) error {
		c := &entity.Category{Name: "Bebidas"}
		if err := repos.Categories.Create(ctx, c); err != nil {
			return err
		}
		p = &entity.Product{Name: "Agua", SKU: "AG01", Price: decimal.NewFromInt(2), CategoryID: c.ID}
		if err := repos.Products.Create(ctx, p); err != nil {
			return err
		}
		_, err := repos.Inventory.CreateIfAbsent(ctx, &entity.Inventory{ProductID: p.ID, Stock: 10})
		return err
	})
	require.NoError(t, err)
	return p
}

func TestStore_RunCommits(t *testing.T) {
	s := NewStore()
	p := seed(t, s)

	got, err := s.Repos().Products.GetBySKU(context.Background(), "AG01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.ID, got.ID)
}

func TestStore_RunDiscardsOnError(t *testing.T) {
	s := NewStore()
	p := seed(t, s)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.Run(ctx, func(repos repository.TxRepos) error {
		inv, err := repos.Inventory.GetForUpdate(ctx, p.ID)
		require.NoError(t, err)
		inv.Stock = 1
		require.NoError(t, repos.Inventory.UpdateStock(ctx, inv))
		require.NoError(t, repos.Sales.Create(ctx, &entity.Sale{ProductID: p.ID, UnitPrice: p.Price, Quantity: 9}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	status, err := s.Repos().Inventory.ListStatus(ctx)
	require.NoError(t, err)
	require.Len(t, status, 1)
	assert.Equal(t, 10, status[0].Stock)

	sales, err := s.Repos().Sales.Query(ctx, repository.SaleFilter{From: time.Time{}, To: time.Now().Add(time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestStore_RunDiscardsOnPanic(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = s.Run(ctx, func(repos repository.TxRepos) error {
			_ = repos.Categories.Create(ctx, &entity.Category{Name: "Temporal"})
			panic("falla")
		})
	})

	c, err := s.Repos().Categories.GetByName(ctx, "Temporal")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestStore_Duplicates(t *testing.T) {
	s := NewStore()
	p := seed(t, s)
	ctx := context.Background()
	repos := s.Repos()

	err := repos.Categories.Create(ctx, &entity.Category{Name: "Bebidas"})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	err = repos.Products.Create(ctx, &entity.Product{Name: "Otra", SKU: "AG01", Price: decimal.NewFromInt(1), CategoryID: p.CategoryID})
	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)

	created, err := repos.Inventory.CreateIfAbsent(ctx, &entity.Inventory{ProductID: p.ID, Stock: 3})
	require.NoError(t, err)
	assert.False(t, created)
}

func TestStore_ConcurrentTransactionsAreSerialized(t *testing.T) {
	s := NewStore()
	p := seed(t, s)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Run(ctx, func(repos repository.TxRepos) error {
				inv, err := repos.Inventory.GetForUpdate(ctx, p.ID)
				if err != nil {
					return err
				}
				inv.Stock++
				return repos.Inventory.UpdateStock(ctx, inv)
			})
		}()
	}
	wg.Wait()

	inv, err := s.Repos().Inventory.GetForUpdate(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, inv.Stock)
}

func TestSaleRepo_QueryOrderAndFilters(t *testing.T) {
	s := NewStore()
	p := seed(t, s)
	ctx := context.Background()
	repos := s.Repos()
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repos.Sales.Create(ctx, &entity.Sale{ProductID: p.ID, UnitPrice: p.Price, Quantity: 1, SaleTime: base.Add(time.Hour)}))
	require.NoError(t, repos.Sales.Create(ctx, &entity.Sale{ProductID: p.ID, UnitPrice: p.Price, Quantity: 2, SaleTime: base}))

	list, err := repos.Sales.Query(ctx, repository.SaleFilter{From: base, To: base.Add(time.Hour)})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].InvoiceNo)
	assert.Equal(t, int64(1), list[1].InvoiceNo)

	list, err = repos.Sales.Query(ctx, repository.SaleFilter{From: base, To: base.Add(time.Hour), CategoryName: "Otra"})
	require.NoError(t, err)
	assert.Empty(t, list)

	sum, err := repos.Sales.Summarize(ctx, base, base.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, sum.SalesCount)
	assert.Equal(t, 3, sum.UnitsSold)
	assert.True(t, sum.Revenue.Equal(decimal.NewFromInt(6)))
}
