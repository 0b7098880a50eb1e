package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	outputapp "github.com/EngNelson/erp-solution-sub003/application/output"
	"github.com/EngNelson/erp-solution-sub003/cmd/config"
	redisclient "github.com/EngNelson/erp-solution-sub003/cmd/redis"
	_ "github.com/EngNelson/erp-solution-sub003/docs"
	itemRepo "github.com/EngNelson/erp-solution-sub003/repository/item"
	locationRepo "github.com/EngNelson/erp-solution-sub003/repository/location"
	movementRepo "github.com/EngNelson/erp-solution-sub003/repository/movement"
	outputRepo "github.com/EngNelson/erp-solution-sub003/repository/output"
	quantityRepo "github.com/EngNelson/erp-solution-sub003/repository/quantity"
	receptionRepo "github.com/EngNelson/erp-solution-sub003/repository/reception"
	redisRepo "github.com/EngNelson/erp-solution-sub003/repository/redis"
	txRepo "github.com/EngNelson/erp-solution-sub003/repository/tx"
	"github.com/EngNelson/erp-solution-sub003/thirdparty/rabbitmq"
	"github.com/EngNelson/erp-solution-sub003/transport"
	"github.com/EngNelson/erp-solution-sub003/utils/logger"
)

// @title WAREHOUSE OUTPUT API
// @version 1.0
// @description Warehouse output lifecycle API Documentation
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

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Catalog sync publisher is best-effort: a broken broker degrades sync,
	// it does not stop the warehouse
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("catalog sync publisher unavailable", zap.Error(err))
		publisher = nil
	} else {
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	OutputRepo := outputRepo.NewOutputRepository(db)
	ItemRepo := itemRepo.NewItemRepository(db)
	LocationRepo := locationRepo.NewLocationRepository(db)
	QuantityRepo := quantityRepo.NewQuantityRepository(db)
	MovementRepo := movementRepo.NewMovementRepository(db)
	ReceptionRepo := receptionRepo.NewReceptionRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	OutputApp := outputapp.NewOutputApp(cfg, TxRepo, OutputRepo, ItemRepo, LocationRepo, QuantityRepo, MovementRepo, ReceptionRepo, RedisRepo, publisher)

	httpTransport := transport.NewTransport(OutputApp, cfg.Auth.JWTSecret, cfg.Catalog.APIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
