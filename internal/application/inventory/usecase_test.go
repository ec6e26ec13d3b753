package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/inventory"
	"github.com/jhoicas/ventas-api/internal/application/ports"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	invrules "github.com/jhoicas/ventas-api/internal/domain/inventory"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/jhoicas/ventas-api/internal/infrastructure/memory"
	"github.com/jhoicas/ventas-api/pkg/logger"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, ev ports.InventoryEvent) error {
	return m.Called(ctx, ev).Error(0)
}

var fixedNow = time.Date(2024, 4, 15, 12, 0, 0, 0, time.UTC)

func newUseCase(t *testing.T, pub ports.EventPublisher) (*inventory.UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	repos := store.Repos()
	uc := inventory.NewUseCase(store, repos.Inventory, repos.Operations, pub, logger.NewNop(), 30).
		WithClock(func() time.Time { return fixedNow })
	return uc, store
}

func seedProduct(t *testing.T, store *memory.Store, sku string) *entity.Product {
	t.Helper()
	ctx := context.Background()
	repos := store.Repos()
	c, err := repos.Categories.GetByName(ctx, "General")
	require.NoError(t, err)
	if c == nil {
		c = &entity.Category{Name: "General"}
		require.NoError(t, repos.Categories.Create(ctx, c))
	}
	p := &entity.Product{Name: "Producto " + sku, SKU: sku, Price: decimal.NewFromInt(10), CategoryID: c.ID}
	require.NoError(t, repos.Products.Create(ctx, p))
	return p
}

func nopPublisher() *mockPublisher {
	pub := &mockPublisher{}
	pub.On("Publish", mock.Anything, mock.Anything).Return(nil)
	return pub
}

func TestAddStock_FirstEntryHasNoHistory(t *testing.T) {
	uc, store := newUseCase(t, nopPublisher())
	seedProduct(t, store, "AB12")
	ctx := context.Background()

	require.NoError(t, uc.AddStock(ctx, "AB12", 10))
	history, err := uc.GetHistory(ctx, dto.HistoryRequest{})
	require.NoError(t, err)
	assert.Empty(t, history)

	require.NoError(t, uc.AddStock(ctx, "AB12", 5))
	history, err = uc.GetHistory(ctx, dto.HistoryRequest{})
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, entity.OperationAdd, history[0].Operation)
	assert.Equal(t, 5, history[0].Units)
	assert.Equal(t, "AB12", history[0].ProductSKU)

	status, err := uc.GetStatus(ctx)
	require.NoError(t, err)
	require.Len(t, status, 1)
	assert.Equal(t, 15, status[0].Stock)
	assert.True(t, status[0].LowStock)
}

func TestAddStock_Validation(t *testing.T) {
	uc, store := newUseCase(t, nopPublisher())
	seedProduct(t, store, "AB12")
	ctx := context.Background()

	err := uc.AddStock(ctx, "NOPE", 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Product not found", err.Error())

	assert.ErrorIs(t, uc.AddStock(ctx, "AB12", 0), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.AddStock(ctx, "AB12", -4), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.AddStock(ctx, "  ", 4), domain.ErrInvalidInput)

	status, err := uc.GetStatus(ctx)
	require.NoError(t, err)
	assert.Empty(t, status)
}

func TestAddStock_CapsAtMaxStock(t *testing.T) {
	uc, store := newUseCase(t, nopPublisher())
	seedProduct(t, store, "MAX1")
	ctx := context.Background()

	require.NoError(t, uc.AddStock(ctx, "MAX1", invrules.MaxStock))
	assert.ErrorIs(t, uc.AddStock(ctx, "MAX1", 1), domain.ErrInvalidInput)

	status, err := uc.GetStatus(ctx)
	require.NoError(t, err)
	require.Len(t, status, 1)
	assert.Equal(t, invrules.MaxStock, status[0].Stock)
}

func TestGetStatus_LowStockThreshold(t *testing.T) {
	uc, store := newUseCase(t, nopPublisher())
	seedProduct(t, store, "LOW1")
	seedProduct(t, store, "OK01")
	ctx := context.Background()

	require.NoError(t, uc.AddStock(ctx, "LOW1", 29))
	require.NoError(t, uc.AddStock(ctx, "OK01", 30))

	status, err := uc.GetStatus(ctx)
	require.NoError(t, err)
	require.Len(t, status, 2)
	assert.True(t, status[0].LowStock)
	assert.False(t, status[1].LowStock)
}

func TestGetHistory_Ranges(t *testing.T) {
	pub := nopPublisher()
	uc, store := newUseCase(t, pub)
	seedProduct(t, store, "AB12")
	ctx := context.Background()

	// Operaciones en tres fechas distintas
	require.NoError(t, uc.AddStock(ctx, "AB12", 1))
	for _, at := range []time.Time{fixedNow.AddDate(0, 0, -10), fixedNow.AddDate(0, 0, -3), fixedNow} {
		at := at
		uc.WithClock(func() time.Time { return at })
		require.NoError(t, uc.AddStock(ctx, "AB12", 2))
	}
	uc.WithClock(func() time.Time { return fixedNow })

	last7, err := uc.GetHistory(ctx, dto.HistoryRequest{})
	require.NoError(t, err)
	assert.Len(t, last7, 2)

	start, end := fixedNow.AddDate(0, 0, -10), fixedNow.AddDate(0, 0, -3)
	explicit, err := uc.GetHistory(ctx, dto.HistoryRequest{Start: &start, End: &end})
	require.NoError(t, err)
	require.Len(t, explicit, 2)
	assert.True(t, explicit[0].OperationDate.Before(explicit[1].OperationDate))

	_, err = uc.GetHistory(ctx, dto.HistoryRequest{Start: &start})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.GetHistory(ctx, dto.HistoryRequest{Start: &end, End: &start})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDecrementForSale(t *testing.T) {
	uc, store := newUseCase(t, nopPublisher())
	p := seedProduct(t, store, "AB12")
	ctx := context.Background()
	require.NoError(t, uc.AddStock(ctx, "AB12", 5))

	var remaining int
	err := store.Run(ctx, func(repos repository.TxRepos) error {
		var err error
		remaining, err = uc.DecrementForSale(ctx, repos, p.ID, 5, fixedNow)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)

	err = store.Run(ctx, func(repos repository.TxRepos) error {
		_, err := uc.DecrementForSale(ctx, repos, p.ID, 1, fixedNow)
		return err
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	other := seedProduct(t, store, "NOINV")
	err = store.Run(ctx, func(repos repository.TxRepos) error {
		_, err := uc.DecrementForSale(ctx, repos, other.ID, 1, fixedNow)
		return err
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	history, err := uc.GetHistory(ctx, dto.HistoryRequest{})
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, entity.OperationRemove, history[0].Operation)
}

func TestAddStock_PublishesEvent(t *testing.T) {
	pub := &mockPublisher{}
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(ev ports.InventoryEvent) bool {
		return ev.Type == ports.EventStockAdded && ev.ProductSKU == "AB12" && ev.Quantity == 7 && ev.Stock == 7 && ev.ID != ""
	})).Return(nil).Once()

	uc, store := newUseCase(t, pub)
	seedProduct(t, store, "AB12")

	require.NoError(t, uc.AddStock(context.Background(), "AB12", 7))
	pub.AssertExpectations(t)
}

func TestAddStock_PublishFailureDoesNotFail(t *testing.T) {
	pub := &mockPublisher{}
	pub.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker caído"))

	uc, store := newUseCase(t, pub)
	seedProduct(t, store, "AB12")
	ctx := context.Background()

	require.NoError(t, uc.AddStock(ctx, "AB12", 7))
	status, err := uc.GetStatus(ctx)
	require.NoError(t, err)
	require.Len(t, status, 1)
	assert.Equal(t, 7, status[0].Stock)
	pub.AssertNumberOfCalls(t, "Publish", 1)
}
