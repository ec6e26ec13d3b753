package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-api/internal/application/analytics"
	"github.com/jhoicas/ventas-api/internal/application/inventory"
	"github.com/jhoicas/ventas-api/internal/application/sales"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	InventoryUC *inventory.UseCase
	SalesUC     *sales.UseCase
	ReportUC    *analytics.ReportUseCase
}

// Router registra las rutas de la API (parámetros por query string, sin prefijo).
func Router(app *fiber.App, deps RouterDeps) {
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv := app.Group("/inventory")
	inv.Get("/status", inventoryHandler.Status)
	inv.Post("/add", inventoryHandler.AddStock)
	inv.Get("/track", inventoryHandler.Track)

	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := app.Group("/category")
	categories.Get("/list", categoryHandler.List)
	categories.Post("/add", categoryHandler.Create)

	productHandler := NewProductHandler(deps.ProductUC)
	products := app.Group("/product")
	products.Get("/list", productHandler.List)
	products.Get("/get", productHandler.GetBySKU)
	products.Post("/add", productHandler.Create)

	salesHandler := NewSalesHandler(deps.SalesUC)
	sale := app.Group("/sale")
	sale.Post("/make_sale", salesHandler.MakeSale)
	sale.Get("/receipt/:invoice_no", salesHandler.Receipt)

	reportHandler := NewReportHandler(deps.ReportUC)
	salesGroup := app.Group("/sales")
	salesGroup.Get("/get_data", salesHandler.GetData)
	salesGroup.Get("/get_timed_data", reportHandler.TimedData)
	salesGroup.Get("/compare_data", reportHandler.CompareData)
	salesGroup.Get("/summary", reportHandler.Summary)
}
