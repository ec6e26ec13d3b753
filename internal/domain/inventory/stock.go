package inventory

import (
	"math"

	"github.com/jhoicas/ventas-api/internal/domain"
)

// DefaultLowStockLimit por debajo de este número de unidades un producto se marca con low_stock.
const DefaultLowStockLimit = 30

// MaxStock tope de unidades por producto (columna INTEGER).
const MaxStock = math.MaxInt32

// IsLowStock reporta si stock está por debajo del límite configurado.
func IsLowStock(stock, limit int) bool {
	return stock < limit
}

// Increase suma quantity al stock actual. quantity debe ser positiva y el resultado no puede
// superar MaxStock.
func Increase(current, quantity int) (int, error) {
	if quantity <= 0 {
		return current, domain.ErrInvalidInput
	}
	if quantity > MaxStock-current {
		return current, domain.Errorf(domain.ErrInvalidInput, "stock can not exceed %d units", MaxStock)
	}
	return current + quantity, nil
}

// Decrease resta quantity del stock actual sin permitir que quede negativo.
func Decrease(current, quantity int) (int, error) {
	if quantity <= 0 {
		return current, domain.ErrInvalidInput
	}
	if current < quantity {
		return current, domain.Errorf(domain.ErrInsufficientStock, "Not enough items in stock")
	}
	return current - quantity, nil
}
