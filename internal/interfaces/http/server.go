package http

import (
	"errors"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/pkg/logger"
)

// AppConfig opciones de la aplicación Fiber.
type AppConfig struct {
	Name        string
	Swagger     bool   // sirve /docs
	SwaggerFile string // por defecto ./docs/swagger.json
}

// NewApp construye la aplicación Fiber con middlewares, /health, /docs y las rutas de la API.
func NewApp(cfg AppConfig, log *logger.Logger, deps RouterDeps) *fiber.App {
	// Immutable: los valores de c.Query/c.Params se guardan tal cual en el almacenamiento en
	// memoria; sin copia apuntan al buffer de fasthttp que se reutiliza entre requests.
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		Immutable:    true,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(RequestLogger(log))

	if cfg.Swagger {
		file := cfg.SwaggerFile
		if file == "" {
			file = "./docs/swagger.json"
		}
		// Swagger UI: http://localhost:<port>/docs
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: file,
			Path:     "docs",
			Title:    cfg.Name,
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.Name})
	})

	Router(app, deps)
	return app
}

// errorHandler respuestas de errores no manejados (rutas inexistentes, panics recuperados).
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
