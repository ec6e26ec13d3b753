package dto

import "github.com/shopspring/decimal"

// AddCategoryRequest entrada de POST /category/add.
type AddCategoryRequest struct {
	Name        string
	Description string
}

// CategoryDTO salida de /category/list.
type CategoryDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AddProductRequest entrada de POST /product/add. SKU vacío => se genera.
type AddProductRequest struct {
	Name     string
	Price    decimal.Decimal
	Category string
	SKU      string
}

// ProductDTO salida de /product/list.
type ProductDTO struct {
	Name  string          `json:"name"`
	SKU   string          `json:"sku"`
	Price decimal.Decimal `json:"price"`
}
