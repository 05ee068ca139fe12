package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vendorunity/vendorunity/internal/api"
	"github.com/vendorunity/vendorunity/internal/config"
	"github.com/vendorunity/vendorunity/internal/observability"
	"github.com/vendorunity/vendorunity/internal/service"
	"github.com/vendorunity/vendorunity/internal/storage"
	"github.com/vendorunity/vendorunity/internal/storage/sqlite"
	"github.com/vendorunity/vendorunity/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.IsProduction())

	kv, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	records := storage.NewRecords(kv)
	defer records.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	vendors := service.NewVendorService(records)
	suppliers := service.NewSupplierService(records)
	orderSvc := service.NewOrderService(records, vendors)
	admin := service.NewAdminService(records)

	metrics := observability.New()
	handler := api.NewHandler(vendors, suppliers, orderSvc, admin)
	router := api.NewRouter(handler, cfg, metrics)

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server starting", "address", cfg.AppAddr, "env", cfg.AppEnv)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
}
