package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	controllers "github.com/Dany1912-dev/ProyectoMetodologia/internal/controllers/http"
	"github.com/Dany1912-dev/ProyectoMetodologia/internal/infra"
	mmysql "github.com/Dany1912-dev/ProyectoMetodologia/internal/infra/mysql"
	"github.com/Dany1912-dev/ProyectoMetodologia/internal/infra/rabbitmq"
	"github.com/Dany1912-dev/ProyectoMetodologia/internal/logger"
	mysqlrepo "github.com/Dany1912-dev/ProyectoMetodologia/internal/repository/mysql"
	"github.com/Dany1912-dev/ProyectoMetodologia/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	cfg := NewConfig()

	if err := logger.Initialize(cfg.LogLevel, cfg.Env); err != nil {
		panic(err)
	}
	defer logger.Log.Sync()

	db, err := mmysql.New(cfg.DSN)
	if err != nil {
		logger.Log.Fatal("db: connect", zap.Error(err))
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	orderRepo := mysqlrepo.NewOrderRepository(db)
	customerRepo := mysqlrepo.NewCustomerRepository(db)

	catalogClient := infra.NewCatalogClient(cfg.CatalogURL, 2*time.Second)

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL, "order.exchange")
	if err != nil {
		logger.Log.Fatal("failed to init publisher", zap.Error(err))
	}

	orderService := services.NewOrderService(orderRepo, catalogClient, publisher)
	profileService := services.NewProfileService(orderRepo, customerRepo)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		DB:           0,
		PoolSize:     50,
		MinIdleConns: 10,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	orderService.SetRedisClient(redisClient)

	go func() {
		time.Sleep(5 * time.Second)
		if err := orderService.WarmupProductCache(context.Background(), []uint64{1, 2, 3}); err != nil {
			logger.Log.Warn("failed to warm up product cache", zap.Error(err))
		}
	}()

	handleTermination(func() {
		publisher.Close()
		redisClient.Close()
		logger.Log.Sync()
	})

	handler := controllers.NewHandler(orderService, profileService, cfg.JWTSecret)

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	logger.Log.Info("starting ordering service", zap.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		logger.Log.Fatal("server run", zap.Error(err))
	}
}

func handleTermination(cleanup func()) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		cleanup()
		os.Exit(1)
	}()
}
