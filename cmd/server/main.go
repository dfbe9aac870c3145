package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	catalogapp "github.com/playbase/backend/internal/application/catalog"
	identityapp "github.com/playbase/backend/internal/application/identity"
	orderingapp "github.com/playbase/backend/internal/application/ordering"
	repairapp "github.com/playbase/backend/internal/application/repair"
	reportapp "github.com/playbase/backend/internal/application/report"
	timelineapp "github.com/playbase/backend/internal/application/timeline"
	"github.com/playbase/backend/internal/domain/shared/valueobject"
	"github.com/playbase/backend/internal/infrastructure/auth"
	"github.com/playbase/backend/internal/infrastructure/config"
	"github.com/playbase/backend/internal/infrastructure/logger"
	"github.com/playbase/backend/internal/infrastructure/notification"
	"github.com/playbase/backend/internal/infrastructure/persistence"
	"github.com/playbase/backend/internal/interfaces/http/handler"
	"github.com/playbase/backend/internal/interfaces/http/middleware"
	"github.com/playbase/backend/internal/interfaces/http/router"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting PlayBase backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing redis", zap.Error(err))
		}
	}()
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Warn("Redis unavailable, token revocation and rate limiting degraded", zap.Error(err))
	} else {
		log.Info("Redis connected")
	}

	// Repositories
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	repairRepo := persistence.NewGormRepairRepository(db.DB)
	timelineRepo := persistence.NewGormTimelineRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	configRepo := persistence.NewGormConfigRepository(db.DB)

	// Auth infrastructure
	jwtService := auth.NewJWTService(cfg.JWT)
	hasher := auth.NewBcryptHasher()
	blacklist := auth.NewRedisTokenBlacklist(redisClient)

	// Notifications
	var orderNotifier orderingapp.Notifier
	var repairNotifier repairapp.Notifier
	if cfg.SMTP.Enabled {
		mailer := notification.NewMailer(cfg.SMTP)
		orderNotifier = mailer
		repairNotifier = mailer
		log.Info("SMTP notifications enabled", zap.String("host", cfg.SMTP.Host))
	}
	var adminNotifier repairapp.AdminNotifier
	if cfg.Telegram.Enabled {
		adminNotifier = notification.NewTelegramNotifier(cfg.Telegram)
		log.Info("Telegram admin alerts enabled")
	}

	shippingFee, err := valueobject.NewMoneyEURFromString(cfg.Shop.ShippingFee)
	if err != nil {
		log.Fatal("Invalid shipping fee", zap.String("value", cfg.Shop.ShippingFee), zap.Error(err))
	}

	// Application services
	authService := identityapp.NewAuthService(userRepo, hasher, jwtService, blacklist, log)
	orderService := orderingapp.NewOrderService(orderRepo, productRepo, configRepo, userRepo, orderNotifier, shippingFee, log)
	repairService := repairapp.NewRepairService(repairRepo, userRepo, repairNotifier, adminNotifier, log)
	productService := catalogapp.NewProductService(productRepo)
	configService := catalogapp.NewConfigService(configRepo)
	timelineService := timelineapp.NewTimelineService(timelineRepo, orderRepo, repairRepo)
	reportService := reportapp.NewReportService(orderRepo, repairRepo)

	// HTTP layer
	defaultLang := cfg.Shop.DefaultLanguage
	rateLimit := middleware.RateLimit(redisClient, cfg.HTTP, log)

	engine := router.New(router.Dependencies{
		Config:    cfg,
		Logger:    log,
		JWT:       jwtService,
		Blacklist: blacklist,
		RateLimit: rateLimit,

		Auth:        handler.NewAuthHandler(authService, log, defaultLang),
		Order:       handler.NewOrderHandler(orderService, log, defaultLang),
		Repair:      handler.NewRepairHandler(repairService, log, defaultLang),
		Product:     handler.NewProductHandler(productService, log, defaultLang),
		SavedConfig: handler.NewConfigHandler(configService, log, defaultLang),
		Timeline:    handler.NewTimelineHandler(timelineService, log, defaultLang),
		Report:      handler.NewReportHandler(reportService, log, defaultLang),
		Health:      handler.NewHealthHandler(db, redisClient, log, cfg.App.Name, version),
	})

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
