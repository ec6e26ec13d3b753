package entity

import "time"

// Inventory es el stock actual de un producto (una fila por producto).
// Se crea en la primera entrada de stock; Stock nunca es negativo.
type Inventory struct {
	ID        int64
	ProductID int64
	Stock     int
	UpdatedAt time.Time
}
