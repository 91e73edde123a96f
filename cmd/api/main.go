package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"kitchencare/internal/config"
	"kitchencare/internal/database"
	"kitchencare/internal/logger"
	"kitchencare/internal/mail"
	"kitchencare/internal/middleware"
	"kitchencare/internal/modules/auth"
	"kitchencare/internal/modules/cart"
	"kitchencare/internal/modules/catalog"
	"kitchencare/internal/modules/contract"
	"kitchencare/internal/modules/kitchen"
	"kitchencare/internal/modules/notification"
	"kitchencare/internal/modules/servicerequest"
	"kitchencare/internal/modules/tips"
	"kitchencare/internal/modules/warranty"
	jwtsvc "kitchencare/internal/pkg/jwt"
	"kitchencare/internal/repository"
	"kitchencare/internal/upload"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	zlog, err := logger.New(cfg.Server.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	if cfg.JWT.Secret == "" {
		zlog.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(cfg.Server.DatabaseURL)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}
	if err := repository.AutoMigrate(db); err != nil {
		zlog.Fatal("migrations failed", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	planRepo := repository.NewPlanRepository(db)
	kitchenRepo := repository.NewKitchenRepository(db)
	requestRepo := repository.NewServiceRequestRepository(db)
	technicianRepo := repository.NewTechnicianRepository(db)
	contractRepo := repository.NewContractRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	tipRepo := repository.NewTipRepository(db)

	j := jwtsvc.New(cfg.JWT.Secret, cfg.JWT.AccessTTL)
	store := upload.NewDiskStore(cfg.Upload.BaseDir, cfg.Upload.StaticBase)

	hub := notification.NewHub()
	defer hub.Close()

	notificationService := notification.NewService(notificationRepo, hub, zlog)
	notificationHandler := notification.NewHandler(notificationService)
	wsHandler := notification.NewWSHandler(hub, j, zlog)

	authService := auth.NewService(userRepo, j, mail.NewLogMailer(zlog))
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(productRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	cartService := cart.NewService(cartRepo, productRepo, orderRepo)
	cartHandler := cart.NewHandler(cartService)

	warrantyService := warranty.NewService(planRepo, notificationService)
	warrantyHandler := warranty.NewHandler(warrantyService)

	kitchenService := kitchen.NewService(kitchenRepo, store)
	kitchenHandler := kitchen.NewHandler(kitchenService)

	requestService := servicerequest.NewService(requestRepo, planRepo, technicianRepo, store, notificationService)
	requestHandler := servicerequest.NewHandler(requestService)

	contractService := contract.NewService(contractRepo, planRepo, userRepo, kitchenRepo)
	contractHandler := contract.NewHandler(contractService)

	tipsHandler := tips.NewHandler(tips.NewService(tipRepo))

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.CORS())

	r.Static(cfg.Upload.StaticBase, cfg.Upload.BaseDir)
	r.GET("/ws/notifications", wsHandler.HandleWebSocket)

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		warrantyHandler.RegisterRoutes(v1)
		requestHandler.RegisterRoutes(v1)
		tipsHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			cartHandler.RegisterRoutes(protected)
			warrantyHandler.RegisterProtectedRoutes(protected)
			kitchenHandler.RegisterProtectedRoutes(protected)
			requestHandler.RegisterProtectedRoutes(protected)
			contractHandler.RegisterProtectedRoutes(protected)
			notificationHandler.RegisterProtectedRoutes(protected)
		}

		internal := v1.Group("/internal")
		internal.Use(middleware.InternalTokenAuth())
		{
			cartHandler.RegisterInternalRoutes(internal)
			requestHandler.RegisterInternalRoutes(internal)
		}
	}

	zlog.Info("starting server", zap.String("port", cfg.Server.Port), zap.String("env", cfg.Server.Env))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
