package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	authapp "github.com/muhammadheryan/stock-ledger/application/auth"
	locationapp "github.com/muhammadheryan/stock-ledger/application/location"
	orderapp "github.com/muhammadheryan/stock-ledger/application/order"
	pickingapp "github.com/muhammadheryan/stock-ledger/application/picking"
	stockapp "github.com/muhammadheryan/stock-ledger/application/stock"
	"github.com/muhammadheryan/stock-ledger/cmd/config"
	redisclient "github.com/muhammadheryan/stock-ledger/cmd/redis"
	_ "github.com/muhammadheryan/stock-ledger/docs"
	"github.com/muhammadheryan/stock-ledger/migrations"
	catalogRepo "github.com/muhammadheryan/stock-ledger/repository/catalog"
	fulfillmentRepo "github.com/muhammadheryan/stock-ledger/repository/fulfillment"
	locationRepo "github.com/muhammadheryan/stock-ledger/repository/location"
	orderEventRepo "github.com/muhammadheryan/stock-ledger/repository/orderevent"
	redisRepo "github.com/muhammadheryan/stock-ledger/repository/redis"
	stockRepo "github.com/muhammadheryan/stock-ledger/repository/stock"
	txRepo "github.com/muhammadheryan/stock-ledger/repository/tx"
	"github.com/muhammadheryan/stock-ledger/thirdparty/rabbitmq"
	"github.com/muhammadheryan/stock-ledger/transport"
	"github.com/muhammadheryan/stock-ledger/utils/logger"
	"go.uber.org/zap"
)

// @title STOCK LEDGER API
// @version 1.0
// @description Multi-location stock ledger and order reservation API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(db.DB); err != nil {
			logger.Fatal("err migrate db", zap.Error(err))
		}
		logger.Info("database migrated")
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	StockRepo := stockRepo.NewStockRepository(db)
	LocationRepo := locationRepo.NewLocationRepository(db)
	CatalogRepo := catalogRepo.NewCatalogRepository(db)
	FulfillmentRepo := fulfillmentRepo.NewFulfillmentRepository(db)
	OrderEventRepo := orderEventRepo.NewOrderEventRepository(db)
	RedisRepo := redisRepo.NewRepository(redisclient.Get())

	// Initialize message broker
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ)
	if err != nil {
		logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
	}
	defer publisher.Close()

	// Initialize application layers
	AuthApp := authapp.NewAuthApp(cfg, RedisRepo)
	StockApp := stockapp.NewStockApp(TxRepo, StockRepo, LocationRepo)
	PickingApp := pickingapp.NewPickingApp(StockRepo)
	DefaultLocation := locationapp.NewDefaultLocationPolicy(LocationRepo)
	OrderApp := orderapp.NewOrderApp(cfg, TxRepo, StockRepo, CatalogRepo, FulfillmentRepo, OrderEventRepo, RedisRepo, DefaultLocation, publisher)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ, OrderApp)
	if err != nil {
		logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
	}
	defer consumer.Close()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start order event consumer", zap.Error(err))
	}
	logger.Info("order event consumer running", zap.String("queue", rabbitmq.OrderEventsQueue))

	httpTransport := transport.NewTransport(cfg.Auth.InternalAPIKey, AuthApp, StockApp, PickingApp, OrderApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed graceful shutdown", zap.Error(err))
	}
}
