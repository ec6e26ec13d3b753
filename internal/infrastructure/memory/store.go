// Package memory implementa los repositorios y el TxRunner en memoria, para desarrollo local
// (DB_DRIVER=memory) y tests. Las transacciones se serializan y trabajan sobre una copia del
// estado que solo reemplaza al original en el Commit.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.TxRunner = (*Store)(nil)

type state struct {
	categories []entity.Category
	products   []entity.Product
	inventory  []entity.Inventory
	operations []entity.InventoryOperation
	sales      []entity.Sale

	nextCategoryID  int64
	nextProductID   int64
	nextInventoryID int64
	nextOperationID int64
	nextSaleID      int64
}

func (st *state) clone() *state {
	c := *st
	c.categories = append([]entity.Category(nil), st.categories...)
	c.products = append([]entity.Product(nil), st.products...)
	c.inventory = append([]entity.Inventory(nil), st.inventory...)
	c.operations = append([]entity.InventoryOperation(nil), st.operations...)
	c.sales = append([]entity.Sale(nil), st.sales...)
	return &c
}

func (st *state) productByID(id int64) (entity.Product, bool) {
	for _, p := range st.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

func (st *state) categoryByID(id int64) (entity.Category, bool) {
	for _, c := range st.categories {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Category{}, false
}

// Store almacenamiento en memoria seguro para uso concurrente.
type Store struct {
	mu sync.RWMutex
	st *state
}

// NewStore crea un almacenamiento vacío.
func NewStore() *Store {
	return &Store{st: &state{}}
}

// Run ejecuta fn sobre una copia del estado. Si fn devuelve nil la copia pasa a ser el estado
// confirmado; ante error o panic se descarta.
func (s *Store) Run(ctx context.Context, fn func(repos repository.TxRepos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := s.st.clone()
	if err := fn(newRepos(view{draft: draft})); err != nil {
		return err
	}
	s.st = draft
	return nil
}

// Repos devuelve repositorios sobre el estado confirmado (cada llamada es atómica).
// No deben usarse dentro de Run.
func (s *Store) Repos() repository.TxRepos {
	return newRepos(view{store: s})
}

// view decide sobre qué estado opera un repositorio: el borrador de una transacción
// o el estado confirmado bajo el lock del Store.
type view struct {
	store *Store
	draft *state
}

func (v view) read(fn func(st *state)) {
	if v.draft != nil {
		fn(v.draft)
		return
	}
	v.store.mu.RLock()
	defer v.store.mu.RUnlock()
	fn(v.store.st)
}

func (v view) write(fn func(st *state) error) error {
	if v.draft != nil {
		return fn(v.draft)
	}
	v.store.mu.Lock()
	defer v.store.mu.Unlock()
	return fn(v.store.st)
}

func newRepos(v view) repository.TxRepos {
	return repository.TxRepos{
		Categories: &categoryRepo{v: v},
		Products:   &productRepo{v: v},
		Inventory:  &inventoryRepo{v: v},
		Operations: &operationRepo{v: v},
		Sales:      &saleRepo{v: v},
	}
}
