package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/inventory"
)

// InventoryHandler maneja las peticiones HTTP del inventario.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Status godoc
// @Summary      Estado del inventario
// @Description  Stock actual por producto; low_stock cuando el stock es menor al umbral configurado.
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /inventory/status [get]
func (h *InventoryHandler) Status(c *fiber.Ctx) error {
	list, err := h.uc.GetStatus(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": dto.StatusSuccess, "inventory_data": list})
}

// AddStock godoc
// @Summary      Agregar stock
// @Tags         inventory
// @Produce      json
// @Param        product_sku  query  string  true  "SKU del producto"
// @Param        stock        query  int     true  "Unidades a agregar"
// @Success      200  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /inventory/add [post]
func (h *InventoryHandler) AddStock(c *fiber.Ctx) error {
	qty, err := queryInt(c, "stock", 0)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.AddStock(c.UserContext(), c.Query("product_sku"), qty); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "Inventory item stock added successfully")
}

// Track godoc
// @Summary      Historial de inventario
// @Description  Operaciones add/remove del rango. Sin start_date se devuelven los últimos 7 días.
// @Tags         inventory
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD (obligatorio si viene start_date)"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /inventory/track [get]
func (h *InventoryHandler) Track(c *fiber.Ctx) error {
	start, err := optionalDate(c, "start_date", false)
	if err != nil {
		return respondError(c, err)
	}
	end, err := optionalDate(c, "end_date", true)
	if err != nil {
		return respondError(c, err)
	}
	list, err := h.uc.GetHistory(c.UserContext(), dto.HistoryRequest{Start: start, End: end})
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, list)
}
