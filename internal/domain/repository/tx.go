package repository

import "context"

// TxRepos repositorios atados a una misma transacción.
type TxRepos struct {
	Categories CategoryRepository
	Products   ProductRepository
	Inventory  InventoryRepository
	Operations InventoryOperationRepository
	Sales      SaleRepository
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn devuelve nil, Rollback en
// cualquier otro caso (incluido un panic). Nada de lo hecho por fn es visible si falla.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}
