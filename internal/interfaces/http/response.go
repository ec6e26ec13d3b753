package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
)

// respondError traduce el error del caso de uso a la respuesta HTTP.
// Los errores de negocio son un resultado "failed" con 200; el resto es un 500.
func respondError(c *fiber.Ctx, err error) error {
	if domain.IsDomainError(err) {
		return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{
			Status:  dto.StatusFailed,
			Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// respondMessage responde {status: success, message}.
func respondMessage(c *fiber.Ctx, message string) error {
	return c.JSON(dto.MessageResponse{Status: dto.StatusSuccess, Message: message})
}

// respondData responde {status: success, data}.
func respondData(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"status": dto.StatusSuccess, "data": data})
}
