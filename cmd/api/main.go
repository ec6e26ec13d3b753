package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/ventas-api/internal/application/analytics"
	"github.com/jhoicas/ventas-api/internal/application/inventory"
	"github.com/jhoicas/ventas-api/internal/application/ports"
	"github.com/jhoicas/ventas-api/internal/application/sales"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/jhoicas/ventas-api/internal/infrastructure/memory"
	"github.com/jhoicas/ventas-api/internal/infrastructure/messaging"
	infrapdf "github.com/jhoicas/ventas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/ventas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/ventas-api/internal/interfaces/http"
	"github.com/jhoicas/ventas-api/pkg/config"
	"github.com/jhoicas/ventas-api/pkg/logger"
	"github.com/jhoicas/ventas-api/pkg/token"
)

// publisher puerto de eventos más el cierre del writer.
type publisher interface {
	ports.EventPublisher
	Close() error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		txRunner repository.TxRunner
		repos    repository.TxRepos
	)
	switch cfg.DB.Driver {
	case config.DriverMemory:
		store := memory.NewStore()
		txRunner, repos = store, store.Repos()
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		txRunner, repos = postgres.NewTxRunner(pool), postgres.NewRepos(pool)
	}

	var events publisher = messaging.NopPublisher{}
	if cfg.Kafka.Enabled() {
		events = messaging.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("publicación de eventos activa")
	}
	defer func() {
		if err := events.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar publicador de eventos")
		}
	}()

	skuGen := token.NewGenerator(cfg.Inventory.SKULength, token.AlphaNumUpper)
	categoryUC := usecase.NewCategoryUseCase(txRunner, repos.Categories)
	productUC := usecase.NewProductUseCase(txRunner, repos.Products, skuGen)
	inventoryUC := inventory.NewUseCase(txRunner, repos.Inventory, repos.Operations, events, log, cfg.Inventory.LowStockLimit)
	salesUC := sales.NewUseCase(txRunner, repos.Sales, inventoryUC, events,
		infrapdf.NewReceiptGenerator(), cfg.Receipt.StoreName, log)
	reportUC := analytics.NewReportUseCase(repos.Sales, repos.Categories)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:    cfg.App.Name,
		Swagger: cfg.HTTP.Swagger,
	}, log, httpRouter.RouterDeps{
		CategoryUC:  categoryUC,
		ProductUC:   productUC,
		InventoryUC: inventoryUC,
		SalesUC:     salesUC,
		ReportUC:    reportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
