package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/pharmaplus/pharmacy-system/docs"
	"github.com/pharmaplus/pharmacy-system/internal/api/handler"
	"github.com/pharmaplus/pharmacy-system/internal/api/middleware"
	"github.com/pharmaplus/pharmacy-system/internal/core/service"
	mongorepo "github.com/pharmaplus/pharmacy-system/internal/infrastructure/db/mongo"
	redisrepo "github.com/pharmaplus/pharmacy-system/internal/infrastructure/db/redis"
	"github.com/pharmaplus/pharmacy-system/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("pharmacy"))

	// --- Repositories ---
	userRepo := mongorepo.NewUserRepository(db)
	productRepo := mongorepo.NewProductRepository(db)
	orderRepo := mongorepo.NewOrderRepository(db)
	prescriptionRepo := mongorepo.NewPrescriptionRepository(db)
	addressRepo := mongorepo.NewAddressRepository(db)
	paymentRepo := mongorepo.NewPaymentMethodRepository(db)
	inventoryRepo := mongorepo.NewInventoryRepository(db)
	dashboardRepo := mongorepo.NewDashboardRepository(db)
	statsCache := redisrepo.NewStatsCache(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, log)
	orderService := service.NewOrderService(orderRepo, log)
	prescriptionService := service.NewPrescriptionService(prescriptionRepo)
	addressService := service.NewAddressService(addressRepo)
	paymentService := service.NewPaymentMethodService(paymentRepo)
	inventoryService := service.NewInventoryService(inventoryRepo)
	dashboardService := service.NewDashboardService(dashboardRepo, statsCache, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)
	prescriptionHandler := handler.NewPrescriptionHandler(prescriptionService)
	addressHandler := handler.NewAddressHandler(addressService)
	paymentHandler := handler.NewPaymentMethodHandler(paymentService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	authMW := middleware.Auth(cfg.JWTSecret)
	adminMW := middleware.AdminOnly()

	// --- Auth ---
	e.POST("/api/auth", authHandler.Handle)

	// --- Products (public reads, admin writes) ---
	products := e.Group("/api/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, authMW, adminMW)
	products.PUT("/:id", productHandler.Update, authMW, adminMW)
	products.DELETE("/:id", productHandler.Delete, authMW, adminMW)

	// --- Orders ---
	orders := e.Group("/api/orders", authMW)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.POST("", orderHandler.Create)
	orders.PUT("/:id/status", orderHandler.UpdateStatus, adminMW)
	orders.DELETE("/:id", orderHandler.Delete, adminMW)

	// --- Prescriptions ---
	prescriptions := e.Group("/api/prescriptions", authMW)
	prescriptions.GET("", prescriptionHandler.List)
	prescriptions.GET("/:id", prescriptionHandler.Get)
	prescriptions.POST("", prescriptionHandler.Create)
	prescriptions.PUT("/:id/status", prescriptionHandler.UpdateStatus, adminMW)
	prescriptions.DELETE("/:id", prescriptionHandler.Delete, adminMW)

	// --- Addresses ---
	addresses := e.Group("/api/addresses", authMW)
	addresses.GET("", addressHandler.List)
	addresses.POST("", addressHandler.Create)
	addresses.DELETE("/:id", addressHandler.Delete)

	// --- Payment methods ---
	payments := e.Group("/api/payment-methods", authMW)
	payments.GET("", paymentHandler.List)
	payments.POST("", paymentHandler.Create)
	payments.DELETE("/:id", paymentHandler.Delete)

	// --- Users (admin only) ---
	users := e.Group("/api/users", authMW, adminMW)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Inventory (admin only) ---
	inventory := e.Group("/api/inventory", authMW, adminMW)
	inventory.GET("", inventoryHandler.List)
	inventory.GET("/:id", inventoryHandler.Get)
	inventory.POST("", inventoryHandler.Create)
	inventory.PUT("/:id", inventoryHandler.Update)
	inventory.DELETE("/:id", inventoryHandler.Delete)

	// --- Admin dashboard ---
	e.GET("/api/admin/dashboard", dashboardHandler.Stats, authMW, adminMW)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
