package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/domain"
)

// ProductHandler maneja las peticiones HTTP de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         product
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /product/list [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, list)
}

// Create godoc
// @Summary      Crear producto
// @Description  Si no se envía sku se genera uno alfanumérico.
// @Tags         product
// @Produce      json
// @Param        name      query  string  true   "Nombre"
// @Param        price     query  number  true   "Precio unitario (> 0)"
// @Param        category  query  string  true   "Nombre de una categoría existente"
// @Param        sku       query  string  false  "SKU único"
// @Success      200  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /product/add [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	price, err := queryDecimal(c, "price")
	if err != nil {
		return respondError(c, err)
	}
	_, err = h.uc.Create(c.UserContext(), dto.AddProductRequest{
		Name:     c.Query("name"),
		Price:    price,
		Category: c.Query("category"),
		SKU:      c.Query("sku"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "Product added")
}

// GetBySKU godoc
// @Summary      Buscar producto por SKU
// @Tags         product
// @Produce      json
// @Param        sku  query  string  true  "SKU"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /product/get [get]
func (h *ProductHandler) GetBySKU(c *fiber.Ctx) error {
	p, err := h.uc.FindBySKU(c.UserContext(), c.Query("sku"))
	if err != nil {
		return respondError(c, err)
	}
	if p == nil {
		return respondError(c, domain.Errorf(domain.ErrNotFound, "No product was found"))
	}
	return respondData(c, dto.ProductDTO{Name: p.Name, SKU: p.SKU, Price: p.Price})
}
