package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/sales"
	"github.com/jhoicas/ventas-api/internal/domain"
)

// SalesHandler maneja las peticiones HTTP de ventas.
type SalesHandler struct {
	uc *sales.UseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *sales.UseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// MakeSale godoc
// @Summary      Registrar venta
// @Description  Descuenta stock, registra la operación y la venta en una sola transacción.
// @Tags         sales
// @Produce      json
// @Param        product_sku  query  string  true   "SKU del producto"
// @Param        quantity     query  int     false  "Unidades (por defecto 1)"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /sale/make_sale [post]
func (h *SalesHandler) MakeSale(c *fiber.Ctx) error {
	qty, err := queryInt(c, "quantity", 1)
	if err != nil {
		return respondError(c, err)
	}
	receipt, err := h.uc.MakeSale(c.UserContext(), c.Query("product_sku"), qty)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"status":       dto.StatusSuccess,
		"message":      "Product sold",
		"receipt_data": receipt,
	})
}

// GetData godoc
// @Summary      Ventas por rango de fechas
// @Description  Filtros opcionales por SKU y categoría (se combinan con AND).
// @Tags         sales
// @Produce      json
// @Param        start_date   query  string  true   "YYYY-MM-DD"
// @Param        end_date     query  string  true   "YYYY-MM-DD (inclusivo)"
// @Param        product_sku  query  string  false  "SKU"
// @Param        category     query  string  false  "Categoría"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /sales/get_data [get]
func (h *SalesHandler) GetData(c *fiber.Ctx) error {
	start, end, err := requiredDateRange(c, "start_date", "end_date")
	if err != nil {
		return respondError(c, err)
	}
	list, err := h.uc.QuerySales(c.UserContext(), dto.SalesQuery{
		Start:      start,
		End:        end,
		ProductSKU: c.Query("product_sku"),
		Category:   c.Query("category"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, list)
}

// Receipt godoc
// @Summary      Recibo de venta en PDF
// @Tags         sales
// @Produce      application/pdf
// @Param        invoice_no  path  int  true  "Número de factura"
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /sale/receipt/{invoice_no} [get]
func (h *SalesHandler) Receipt(c *fiber.Ctx) error {
	invoiceNo, err := strconv.ParseInt(c.Params("invoice_no"), 10, 64)
	if err != nil || invoiceNo <= 0 {
		return respondError(c, domain.Errorf(domain.ErrInvalidInput, "invoice_no must be a positive integer"))
	}
	pdf, err := h.uc.ReceiptPDF(c.UserContext(), invoiceNo)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="recibo-%d.pdf"`, invoiceNo))
	return c.Send(pdf)
}
