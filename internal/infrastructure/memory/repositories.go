package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var (
	_ repository.CategoryRepository           = (*categoryRepo)(nil)
	_ repository.ProductRepository            = (*productRepo)(nil)
	_ repository.InventoryRepository          = (*inventoryRepo)(nil)
	_ repository.InventoryOperationRepository = (*operationRepo)(nil)
	_ repository.SaleRepository               = (*saleRepo)(nil)
)

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

type categoryRepo struct{ v view }

func (r *categoryRepo) Create(_ context.Context, c *entity.Category) error {
	return r.v.write(func(st *state) error {
		for _, existing := range st.categories {
			if existing.Name == c.Name {
				return domain.Errorf(domain.ErrDuplicateName, "Category already present")
			}
		}
		st.nextCategoryID++
		c.ID = st.nextCategoryID
		st.categories = append(st.categories, *c)
		return nil
	})
}

func (r *categoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	var out *entity.Category
	r.v.read(func(st *state) {
		for _, c := range st.categories {
			if c.Name == name {
				c := c
				out = &c
				return
			}
		}
	})
	return out, nil
}

func (r *categoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	var list []*entity.Category
	r.v.read(func(st *state) {
		for _, c := range st.categories {
			c := c
			list = append(list, &c)
		}
	})
	return list, nil
}

type productRepo struct{ v view }

func (r *productRepo) Create(_ context.Context, p *entity.Product) error {
	return r.v.write(func(st *state) error {
		for _, existing := range st.products {
			if existing.SKU == p.SKU {
				return domain.Errorf(domain.ErrDuplicateSKU, "Product already present")
			}
		}
		if _, ok := st.categoryByID(p.CategoryID); !ok {
			return fmt.Errorf("insert product: categoría %d no existe", p.CategoryID)
		}
		st.nextProductID++
		p.ID = st.nextProductID
		st.products = append(st.products, *p)
		return nil
	})
}

func (r *productRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	var out *entity.Product
	r.v.read(func(st *state) {
		for _, p := range st.products {
			if p.SKU == sku {
				p := p
				out = &p
				return
			}
		}
	})
	return out, nil
}

func (r *productRepo) List(_ context.Context) ([]*entity.Product, error) {
	var list []*entity.Product
	r.v.read(func(st *state) {
		for _, p := range st.products {
			p := p
			list = append(list, &p)
		}
	})
	return list, nil
}

type inventoryRepo struct{ v view }

// GetForUpdate no necesita bloqueo propio: las transacciones ya están serializadas.
func (r *inventoryRepo) GetForUpdate(_ context.Context, productID int64) (*entity.Inventory, error) {
	var out *entity.Inventory
	r.v.read(func(st *state) {
		for _, inv := range st.inventory {
			if inv.ProductID == productID {
				inv := inv
				out = &inv
				return
			}
		}
	})
	return out, nil
}

func (r *inventoryRepo) CreateIfAbsent(_ context.Context, inv *entity.Inventory) (bool, error) {
	created := false
	err := r.v.write(func(st *state) error {
		for _, existing := range st.inventory {
			if existing.ProductID == inv.ProductID {
				return nil
			}
		}
		if inv.Stock < 0 {
			return fmt.Errorf("insert inventory: stock negativo")
		}
		st.nextInventoryID++
		inv.ID = st.nextInventoryID
		st.inventory = append(st.inventory, *inv)
		created = true
		return nil
	})
	return created, err
}

func (r *inventoryRepo) UpdateStock(_ context.Context, inv *entity.Inventory) error {
	return r.v.write(func(st *state) error {
		if inv.Stock < 0 {
			return fmt.Errorf("update inventory: stock negativo")
		}
		for i := range st.inventory {
			if st.inventory[i].ProductID == inv.ProductID {
				st.inventory[i].Stock = inv.Stock
				st.inventory[i].UpdatedAt = inv.UpdatedAt
				return nil
			}
		}
		return fmt.Errorf("update inventory: producto %d sin inventario", inv.ProductID)
	})
}

func (r *inventoryRepo) ListStatus(_ context.Context) ([]repository.StockStatus, error) {
	var list []repository.StockStatus
	r.v.read(func(st *state) {
		for _, inv := range st.inventory {
			p, _ := st.productByID(inv.ProductID)
			list = append(list, repository.StockStatus{
				ProductName: p.Name,
				ProductSKU:  p.SKU,
				Stock:       inv.Stock,
			})
		}
	})
	return list, nil
}

type operationRepo struct{ v view }

func (r *operationRepo) Create(_ context.Context, op *entity.InventoryOperation) error {
	return r.v.write(func(st *state) error {
		if op.Quantity <= 0 {
			return fmt.Errorf("insert inventory operation: cantidad inválida %d", op.Quantity)
		}
		st.nextOperationID++
		op.ID = st.nextOperationID
		st.operations = append(st.operations, *op)
		return nil
	})
}

func (r *operationRepo) ListByDateRange(_ context.Context, from, to time.Time) ([]repository.OperationView, error) {
	var ops []entity.InventoryOperation
	list := []repository.OperationView{}
	r.v.read(func(st *state) {
		for _, op := range st.operations {
			if inRange(op.Date, from, to) {
				ops = append(ops, op)
			}
		}
		sort.SliceStable(ops, func(i, j int) bool {
			if ops[i].Date.Equal(ops[j].Date) {
				return ops[i].ID < ops[j].ID
			}
			return ops[i].Date.Before(ops[j].Date)
		})
		for _, op := range ops {
			p, _ := st.productByID(op.ProductID)
			list = append(list, repository.OperationView{
				ProductName: p.Name,
				ProductSKU:  p.SKU,
				Operation:   op.Operation,
				Quantity:    op.Quantity,
				Date:        op.Date,
			})
		}
	})
	return list, nil
}

type saleRepo struct{ v view }

func (r *saleRepo) Create(_ context.Context, s *entity.Sale) error {
	return r.v.write(func(st *state) error {
		if s.Quantity <= 0 {
			return fmt.Errorf("insert sale: cantidad inválida %d", s.Quantity)
		}
		st.nextSaleID++
		s.ID = st.nextSaleID
		st.sales = append(st.sales, *s)
		return nil
	})
}

func (r *saleRepo) toView(st *state, s entity.Sale) repository.SaleView {
	p, _ := st.productByID(s.ProductID)
	return repository.SaleView{
		InvoiceNo:   s.ID,
		ProductName: p.Name,
		ProductSKU:  p.SKU,
		Quantity:    s.Quantity,
		UnitPrice:   s.UnitPrice,
		SaleTime:    s.SaleTime,
	}
}

func (r *saleRepo) Query(_ context.Context, f repository.SaleFilter) ([]repository.SaleView, error) {
	list := []repository.SaleView{}
	r.v.read(func(st *state) {
		for _, s := range st.sales {
			if !inRange(s.SaleTime, f.From, f.To) {
				continue
			}
			p, _ := st.productByID(s.ProductID)
			if f.ProductSKU != "" && p.SKU != f.ProductSKU {
				continue
			}
			if f.CategoryName != "" {
				c, ok := st.categoryByID(p.CategoryID)
				if !ok || c.Name != f.CategoryName {
					continue
				}
			}
			list = append(list, r.toView(st, s))
		}
	})
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].SaleTime.Equal(list[j].SaleTime) {
			return list[i].InvoiceNo < list[j].InvoiceNo
		}
		return list[i].SaleTime.Before(list[j].SaleTime)
	})
	return list, nil
}

func (r *saleRepo) GetView(_ context.Context, invoiceNo int64) (*repository.SaleView, error) {
	var out *repository.SaleView
	r.v.read(func(st *state) {
		for _, s := range st.sales {
			if s.ID == invoiceNo {
				v := r.toView(st, s)
				out = &v
				return
			}
		}
	})
	return out, nil
}

func (r *saleRepo) Summarize(_ context.Context, from, to time.Time) (repository.SalesSummary, error) {
	sum := repository.SalesSummary{Revenue: decimal.Zero}
	r.v.read(func(st *state) {
		for _, s := range st.sales {
			if !inRange(s.SaleTime, from, to) {
				continue
			}
			sum.SalesCount++
			sum.UnitsSold += s.Quantity
			sum.Revenue = sum.Revenue.Add(s.Total())
		}
	})
	return sum, nil
}
