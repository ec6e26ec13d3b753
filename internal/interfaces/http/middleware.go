package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/ventas-api/pkg/logger"
)

const (
	// HeaderRequestID cabecera con el ID de la petición (se respeta si viene del cliente).
	HeaderRequestID = "X-Request-ID"
	// LocalRequestID clave en c.Locals.
	LocalRequestID = "request_id"
)

// RequestLogger asigna un request id y registra método, ruta, estado y latencia de cada petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Locals(LocalRequestID, reqID)
		c.Set(HeaderRequestID, reqID)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// el ErrorHandler de fiber todavía no escribió la respuesta
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev.Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}

