package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sean861026/pos-system/internal/category"
	"github.com/Sean861026/pos-system/internal/config"
	"github.com/Sean861026/pos-system/internal/db"
	"github.com/Sean861026/pos-system/internal/httpapi"
	"github.com/Sean861026/pos-system/internal/inventory"
	"github.com/Sean861026/pos-system/internal/logger"
	"github.com/Sean861026/pos-system/internal/order"
	"github.com/Sean861026/pos-system/internal/product"
	"github.com/Sean861026/pos-system/internal/report"
	"github.com/Sean861026/pos-system/internal/user"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	userSvc := user.NewService(user.NewRepository(database))
	categorySvc := category.NewService(category.NewRepository(database))
	productSvc := product.NewService(product.NewRepository(database))
	inventorySvc := inventory.NewService(inventory.NewRepository(database))
	orderSvc := order.NewService(order.NewRepository(database))
	reportSvc := report.NewService(report.NewRepository(database))

	srv := httpapi.NewServer(httpapi.Services{
		Users:       userSvc,
		Categories:  categorySvc,
		Products:    productSvc,
		Orders:      orderSvc,
		Inventories: inventorySvc,
		Reports:     reportSvc,
	})

	httpServer := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: srv.Router(),
	}

	go func() {
		logger.L().Info("server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.L().Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.L().Error("shutdown error", zap.Error(err))
	}
}
