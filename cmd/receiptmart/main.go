package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/DrGermanius/Receiptmart/internal"
)

func main() {
	//decimals at json as string
	//https://github.com/shopspring/decimal/issues/21
	decimal.MarshalJSONWithoutQuotes = true

	cfg := NewConfig()
	z, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	sugaredLogger := z.Sugar()

	var repository IRepository
	if cfg.DatabaseURI == "" {
		sugaredLogger.Info("DATABASE_URI is empty, records are kept in memory")
		repository = NewMemoryRepository()
	} else {
		repository, err = NewRepository(cfg.DatabaseURI, sugaredLogger)
		if err != nil {
			sugaredLogger.Fatal(err)
		}
	}

	service := NewService(repository, ValidationOpts{StrictTotal: cfg.StrictTotalCheck}, sugaredLogger)
	handlers := NewHandlers(service, sugaredLogger)

	app := fiber.New()
	app.Use(logger.New())

	receipts := app.Group("/receipts")
	receipts.Post("/process", handlers.ProcessReceipt)
	receipts.Get("/:id", handlers.GetReceipt)
	receipts.Get("/:id/points", handlers.GetPoints)

	go func() {
		sugaredLogger.Fatal(app.Listen(cfg.RunAddress))
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugaredLogger.Info("Shutting down service...")
}
