// CartService 主程序
// 功能：购物车管理、优惠券应用与对账、合计计算
// 架构：基于 DDD + HTTP + Kafka 事件发布
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	cartapp "github.com/wyfcoding/beautyassistant/internal/cart/application"
	cartdomain "github.com/wyfcoding/beautyassistant/internal/cart/domain"
	"github.com/wyfcoding/beautyassistant/internal/cart/infrastructure/catalogreader"
	cartmessaging "github.com/wyfcoding/beautyassistant/internal/cart/infrastructure/messaging"
	cartmysql "github.com/wyfcoding/beautyassistant/internal/cart/infrastructure/persistence/mysql"
	httphandler "github.com/wyfcoding/beautyassistant/internal/cart/interfaces/http"
	catalogapp "github.com/wyfcoding/beautyassistant/internal/catalog/application"
	catalogmysql "github.com/wyfcoding/beautyassistant/internal/catalog/infrastructure/persistence/mysql"
	catalogredis "github.com/wyfcoding/beautyassistant/internal/catalog/infrastructure/persistence/redis"
	"github.com/wyfcoding/beautyassistant/pkg/cache"
	"github.com/wyfcoding/beautyassistant/pkg/config"
	"github.com/wyfcoding/beautyassistant/pkg/db"
	"github.com/wyfcoding/beautyassistant/pkg/logger"
	"github.com/wyfcoding/beautyassistant/pkg/metrics"
	"github.com/wyfcoding/beautyassistant/pkg/middleware"
	"github.com/wyfcoding/beautyassistant/pkg/mq"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "configs/cart/config.toml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		FilePath:   cfg.Logger.FilePath,
		MaxSize:    cfg.Logger.MaxSize,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAge:     cfg.Logger.MaxAge,
		Compress:   cfg.Logger.Compress,
		WithCaller: cfg.Logger.WithCaller,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	logger.Info(ctx, "Starting CartService",
		"service", cfg.ServiceName,
		"version", cfg.Version,
		"environment", cfg.Environment,
	)

	database, err := db.Init(db.Config{
		Driver:             cfg.Database.Driver,
		DSN:                cfg.Database.DSN,
		MaxOpenConns:       cfg.Database.MaxOpenConns,
		MaxIdleConns:       cfg.Database.MaxIdleConns,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		LogEnabled:         cfg.Database.LogEnabled,
		SlowQueryThreshold: cfg.Database.SlowQueryThreshold,
	})
	if err != nil {
		logger.Fatal(ctx, "Failed to initialize database", "error", err)
	}
	defer database.Close()

	if cfg.Environment == "dev" {
		if err := database.AutoMigrate(&cartdomain.Cart{}, &cartdomain.CartItem{}); err != nil {
			logger.Fatal(ctx, "Failed to migrate database", "error", err)
		}
	}

	redisCache, err := cache.New(cache.Config{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		MaxPoolSize:  cfg.Redis.MaxPoolSize,
		ConnTimeout:  cfg.Redis.ConnTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		logger.Fatal(ctx, "Failed to initialize Redis", "error", err)
	}
	defer redisCache.Close()

	producer, err := mq.NewProducer(mq.KafkaConfig{
		Brokers:      cfg.Kafka.Brokers,
		MaxRetries:   cfg.Kafka.MaxRetries,
		RetryBackoff: cfg.Kafka.RetryBackoff,
	})
	if err != nil {
		logger.Fatal(ctx, "Failed to create Kafka producer", "error", err)
	}
	defer producer.Close()

	metricsInstance := metrics.New(cfg.ServiceName)
	if err := metricsInstance.Register(); err != nil {
		logger.Fatal(ctx, "Failed to register metrics", "error", err)
	}
	if cfg.Metrics.Enabled {
		if err := metrics.StartHTTPServer(cfg.Metrics.Port, cfg.Metrics.Path); err != nil {
			logger.Fatal(ctx, "Failed to start metrics HTTP server", "error", err)
		}
	}
	collector := metrics.NewDefaultCollector(metricsInstance)

	// 商品信息通过目录上下文的查询服务读取
	catalogRepo := catalogmysql.NewProductRepository(database.DB)
	productCache := catalogredis.NewProductCache(redisCache.GetClient(), time.Duration(cfg.Catalog.CacheTTL)*time.Second)
	catalogQuery := catalogapp.NewCatalogQueryService(catalogRepo, productCache)

	cartRepo := cartmysql.NewCartRepository(database.DB)
	publisher := cartmessaging.NewKafkaPublisher(producer)
	cartService := cartapp.NewCartApplicationService(cartRepo, catalogreader.New(catalogQuery), publisher)

	httpServer := createHTTPServer(cfg, cartService, collector)
	grpcServer := createGRPCServer()

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		logger.Info(gCtx, "Starting HTTP server", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		addr := fmt.Sprintf("%s:%d", cfg.GRPC.Host, cfg.GRPC.Port)
		listener, err := net.Listen("tcp", addr)
		if err != nil {
			return err
		}
		logger.Info(gCtx, "Starting gRPC server", "addr", addr)
		return grpcServer.Serve(listener)
	})

	// 周期刷新活跃购物车指标
	g.Go(func() error {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-gCtx.Done():
				return nil
			case <-ticker.C:
				count, err := cartService.CountActiveCarts(gCtx)
				if err != nil {
					logger.Error(gCtx, "Failed to count active carts", "error", err)
					continue
				}
				collector.UpdateActiveCarts(count)
			}
		}
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info(ctx, "Shutting down CartService")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error(ctx, "HTTP server shutdown error", "error", err)
		}
		grpcServer.GracefulStop()
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error(ctx, "Service exited with error", "error", err)
	}
	logger.Info(ctx, "CartService stopped")
}

// createHTTPServer 创建 HTTP 服务器
func createHTTPServer(cfg *config.Config, cartService *cartapp.CartApplicationService, collector metrics.Collector) *http.Server {
	if cfg.Environment == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.GinLoggingMiddleware())
	router.Use(middleware.GinRecoveryMiddleware())
	router.Use(middleware.GinCORSMiddleware())
	router.Use(middleware.GinRateLimitMiddleware(middleware.NewRateLimiter(200, 100)))

	handler := httphandler.NewCartHandler(cartService, collector)
	handler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   cfg.ServiceName,
			"timestamp": time.Now().Unix(),
		})
	})

	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
	}
}

// createGRPCServer 创建 gRPC 服务器（健康检查与反射）
func createGRPCServer() *grpc.Server {
	server := grpc.NewServer()
	healthpb.RegisterHealthServer(server, health.NewServer())
	reflection.Register(server)
	return server
}
