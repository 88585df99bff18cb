package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Pesokrava/store_inventory/internal/config"
	"github.com/Pesokrava/store_inventory/internal/delivery/events"
	httpDelivery "github.com/Pesokrava/store_inventory/internal/delivery/http"
	"github.com/Pesokrava/store_inventory/internal/delivery/http/handler"
	"github.com/Pesokrava/store_inventory/internal/domain"
	"github.com/Pesokrava/store_inventory/internal/pkg/logger"
	"github.com/Pesokrava/store_inventory/internal/usecase/catalog"

	_ "github.com/Pesokrava/store_inventory/docs"
)

// @title Store Inventory API
// @version 1.0
// @description A retail inventory and ordering service with a product catalog, promotions, and atomic order placement.

// @contact.name API Support
// @contact.url http://github.com/Pesokrava/store_inventory

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

// @tag.name Catalog
// @tag.description Product catalog endpoints

// @tag.name Store
// @tag.description Store-level queries

// @tag.name Orders
// @tag.description Order placement

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Env)
	appLogger.Info("Starting Store Inventory API...")

	appLogger.Info("Connecting to NATS...")
	publisher, err := events.NewPublisher(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create NATS publisher", err)
	}
	defer publisher.Close()

	if err := publisher.EnsureStream(); err != nil {
		appLogger.Fatal("Failed to provision order events stream", err)
	}

	store, err := seedCatalog()
	if err != nil {
		appLogger.Fatal("Failed to seed catalog", err)
	}
	appLogger.Infof("Catalog seeded with %d items in stock", store.TotalQuantity())

	catalogService := catalog.NewService(store, cfg.Order.Atomic, publisher, appLogger)

	catalogHandler := handler.NewCatalogHandler(catalogService, appLogger)
	orderHandler := handler.NewOrderHandler(catalogService, appLogger)

	router := httpDelivery.NewRouter(catalogHandler, orderHandler, cfg, appLogger)
	httpHandler := router.Setup()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      httpHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Infof("HTTP server listening on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("HTTP server failed", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server stopped gracefully")
}

// seedCatalog builds the initial in-memory catalog. The catalog lives only
// for the process lifetime; there is no persistence.
func seedCatalog() (*domain.Store, error) {
	macbook, err := domain.NewProduct("MacBook Air M2", 1450, 100)
	if err != nil {
		return nil, err
	}
	earbuds, err := domain.NewProduct("Bose QuietComfort Earbuds", 250, 500)
	if err != nil {
		return nil, err
	}
	pixel, err := domain.NewProduct("Google Pixel 7", 500, 250)
	if err != nil {
		return nil, err
	}
	license, err := domain.NewNonStockedProduct("Windows License", 125)
	if err != nil {
		return nil, err
	}
	shipping, err := domain.NewLimitedProduct("Shipping", 10, 250, 1)
	if err != nil {
		return nil, err
	}

	thirtyOff, err := domain.NewPercentDiscount("30% off!", 30)
	if err != nil {
		return nil, err
	}
	macbook.SetPromotion(domain.NewSecondHalfPrice("Second Half price!"))
	earbuds.SetPromotion(domain.NewThirdOneFree("Third One Free!"))
	license.SetPromotion(thirtyOff)

	return domain.NewStore([]domain.Product{macbook, earbuds, pixel, license, shipping}), nil
}
