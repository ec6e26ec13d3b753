package entity

// Category agrupa productos. El nombre es único en el sistema.
type Category struct {
	ID          int64
	Name        string
	Description string // opcional
}
