package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"supplysight/internal/analytics"
	"supplysight/internal/config"
	"supplysight/internal/handlers"
	"supplysight/internal/jobs/background"
	"supplysight/internal/logger"
	"supplysight/internal/services"
	"supplysight/internal/store"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	// The store exclusively owns all inventory state; engines read through
	// it and only the inventory service writes.
	inventoryStore := store.New(store.SeedProducts(), store.SeedWarehouses())
	zapLogger.Info("inventory store seeded",
		zap.Int("products", len(inventoryStore.Products())),
		zap.Int("warehouses", len(inventoryStore.Warehouses())),
	)

	querySvc := services.NewQueryService(inventoryStore)
	warehouseSvc := services.NewWarehouseService(inventoryStore)
	inventorySvc := services.NewInventoryService(inventoryStore, zapLogger)
	analyticsSvc := analytics.NewService(inventoryStore, zapLogger)

	snapshotScheduler, err := background.NewSnapshotScheduler(analyticsSvc, cfg.KPI.SnapshotInterval, zapLogger)
	if err != nil {
		zapLogger.Fatal("creating snapshot scheduler", zap.Error(err))
	}
	snapshotScheduler.Start()

	productHandlers := handlers.NewProductHandlers(querySvc)
	warehouseHandlers := handlers.NewWarehouseHandlers(warehouseSvc)
	inventoryHandlers := handlers.NewInventoryHandlers(inventorySvc, warehouseSvc)
	kpiHandlers := handlers.NewKPIHandlers(analyticsSvc)
	healthHandlers := handlers.NewHealthHandlers(inventoryStore, version)

	e := echo.New()
	e.HideBanner = true

	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	e.GET("/health", healthHandlers.HealthCheck)

	v1 := e.Group("/v1")
	v1.GET("/products", productHandlers.ListProducts)
	v1.GET("/warehouses", warehouseHandlers.ListWarehouses)
	v1.GET("/kpis", kpiHandlers.ListKPIs)
	v1.PUT("/products/:id/demand", inventoryHandlers.UpdateDemand)
	v1.POST("/products/:id/transfers", inventoryHandlers.TransferStock)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := e.Start(addr); err != nil {
			zapLogger.Info("server stopped", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	if err := snapshotScheduler.Stop(); err != nil {
		zapLogger.Error("stopping scheduler", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("server shutdown", zap.Error(err))
	}
}
