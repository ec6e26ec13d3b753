package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP de categorías.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías
// @Tags         category
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /category/list [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, list)
}

// Create godoc
// @Summary      Crear categoría
// @Tags         category
// @Produce      json
// @Param        name         query  string  true   "Nombre único"
// @Param        description  query  string  false  "Descripción"
// @Success      200  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /category/add [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	_, err := h.uc.Create(c.UserContext(), dto.AddCategoryRequest{
		Name:        c.Query("name"),
		Description: c.Query("description"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "category added")
}
