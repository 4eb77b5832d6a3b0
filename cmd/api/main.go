package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-dashboard/internal/application/analytics"
	"github.com/jhoicas/inventory-dashboard/internal/application/inventory"
	"github.com/jhoicas/inventory-dashboard/internal/application/usecase"
	"github.com/jhoicas/inventory-dashboard/internal/infrastructure/memory"
	"github.com/jhoicas/inventory-dashboard/internal/infrastructure/metrics"
	"github.com/jhoicas/inventory-dashboard/internal/infrastructure/ws"
	"github.com/jhoicas/inventory-dashboard/internal/interfaces/graphql"
	httpRouter "github.com/jhoicas/inventory-dashboard/internal/interfaces/http"
	"github.com/jhoicas/inventory-dashboard/pkg/config"
	"github.com/jhoicas/inventory-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// El catálogo vive en memoria; se reinicia con el proceso.
	store := memory.NewSeededCatalogStore()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	hub := ws.NewHub(log)
	go hub.Run(ctx)

	productUC := usecase.NewProductUseCase(store)
	warehouseUC := usecase.NewWarehouseUseCase(store)
	stockUC := inventory.NewStockUseCase(store, hub, log)
	kpiUC := analytics.NewKPIUseCase(store, analytics.WithSeed(cfg.KPI.Seed))

	schema, err := graphql.NewSchema(graphql.Deps{
		ProductUC:   productUC,
		WarehouseUC: warehouseUC,
		StockUC:     stockUC,
		KPIUC:       kpiUC,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("construir esquema GraphQL")
	}

	m := metrics.New(hub.Clients)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:      cfg.App.Name,
		AllowOrigins: cfg.HTTP.AllowOrigins,
		GraphQL:      httpRouter.NewGraphQLHandler(schema, cfg.HTTP.RequestTimeout, m, log),
		Metrics:      m,
		Hub:          hub,
		Log:          log,
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
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
