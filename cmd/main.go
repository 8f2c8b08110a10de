package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"

	"restopos/internal/caching"
	"restopos/internal/config"
	"restopos/internal/handlers"
	"restopos/internal/jobs"
	"restopos/internal/jobs/background"
	"restopos/internal/middleware"
	"restopos/internal/repositories"
	"restopos/internal/services"
	"restopos/pkg/database"
)

const version = "1.0.0"

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	pool, err := database.NewPool(context.Background(), cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	jwtSecret := cfg.Auth.JWTSecret
	if jwtSecret == "" {
		jwtSecret = random.String(32) // Generate random secret for development
		log.Printf("WARNING: Using generated JWT secret")
	}

	// Create cache service
	cacheSvc := caching.NewRedisCacheService(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer cacheSvc.Close()

	// Create repositories
	inventoryRepo := repositories.NewInventoryRepository(pool)
	menuRepo := repositories.NewMenuRepository(pool)
	orderRepo := repositories.NewOrderRepository(pool)
	reportRepo := repositories.NewReportRepository(pool)
	staffRepo := repositories.NewStaffRepository(pool)
	restaurantRepo := repositories.NewRestaurantRepository(pool)

	// Create services
	inventorySvc := services.NewInventoryService(inventoryRepo)
	menuSvc := services.NewMenuService(menuRepo, inventoryRepo, cacheSvc)
	orderSvc := services.NewOrderService(orderRepo, menuRepo)
	reportSvc := services.NewReportService(reportRepo, inventoryRepo, cacheSvc)
	authSvc := services.NewAuthService(staffRepo, jwtSecret, cfg.Auth.GoogleClientID)

	// Create handlers
	healthHandlers := handlers.NewHealthHandlers(pool)
	authHandlers := handlers.NewAuthHandlers(authSvc)
	inventoryHandlers := handlers.NewInventoryHandlers(inventorySvc)
	menuHandlers := handlers.NewMenuHandlers(menuSvc)
	orderHandlers := handlers.NewOrderHandlers(orderSvc)
	staffHandlers := handlers.NewStaffHandlers(staffRepo)
	restaurantHandlers := handlers.NewRestaurantHandlers(restaurantRepo, reportSvc)

	// Background jobs
	alertSvc := jobs.NewRestockAlertService(reportRepo, cfg.Jobs.RestockThreshold)
	scheduler, err := background.NewJobScheduler(alertSvc, restaurantRepo, time.Duration(cfg.Jobs.RestockCheckMinutes)*time.Minute)
	if err != nil {
		log.Fatalf("Failed to create job scheduler: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create Echo instance
	e := echo.New()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Pre(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints (no auth required)
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	// Authentication routes
	auth := e.Group("/auth")
	auth.POST("/register", authHandlers.Register)
	auth.POST("/login", authHandlers.Login)
	auth.POST("/google", authHandlers.GoogleLogin)

	// Public reads
	e.GET("/menu", menuHandlers.ListMenu)
	e.GET("/menu/:id", menuHandlers.GetMenuItem)
	e.GET("/menu/name/:name", menuHandlers.GetMenuItemByName)
	e.GET("/menu/type/:type", menuHandlers.ListMenuByType)
	e.GET("/inventory", inventoryHandlers.ListInventory)
	e.GET("/inventory/:id", inventoryHandlers.GetInventoryItem)
	e.GET("/inventory/name/:name", inventoryHandlers.GetInventoryItemByName)

	// Protected routes
	protected := e.Group("")
	protected.Use(echojwt.WithConfig(middleware.JWTConfig(jwtSecret)))

	protected.GET("/orders", orderHandlers.ListOrders)
	protected.GET("/orders/recent", orderHandlers.ListRecentOrders)
	protected.GET("/orders/:id", orderHandlers.GetOrder)
	protected.GET("/orders/:id/items", orderHandlers.GetOrderItems)
	protected.GET("/orders/customer/:id", orderHandlers.ListOrdersByCustomer)
	protected.GET("/orders/date/:date", orderHandlers.ListOrdersByDate)
	protected.GET("/orders/since/:date", orderHandlers.ListOrdersSince)
	protected.POST("/orders", orderHandlers.PlaceOrder)
	protected.DELETE("/orders/:id", orderHandlers.CancelOrder)
	protected.PUT("/orders/:id/price", orderHandlers.UpdateOrderPrice)
	protected.POST("/orders/:id/items", orderHandlers.AddOrderItem)
	protected.DELETE("/orders/:id/items/:menu_id", orderHandlers.RemoveOrderItem)

	protected.POST("/menu", menuHandlers.CreateMenuItem)
	protected.DELETE("/menu/:id", menuHandlers.DeleteMenuItem)
	protected.PUT("/menu/:id/price", menuHandlers.UpdateMenuItemPrice)
	protected.PUT("/menu/name/:name/price", menuHandlers.UpdateMenuItemPriceByName)

	protected.POST("/inventory", inventoryHandlers.CreateInventoryItem)
	protected.POST("/inventory/update-quantity", inventoryHandlers.UpdateInventoryQuantity)

	protected.GET("/staff", staffHandlers.ListStaff)
	protected.POST("/staff/add", staffHandlers.AddStaff)

	protected.GET("/restaurant", restaurantHandlers.ListRestaurants)
	protected.GET("/restaurant/restockreport", restaurantHandlers.RestockReport)
	protected.GET("/restaurant/salesreport", restaurantHandlers.SalesReport)
	protected.GET("/restaurant/excessreport", restaurantHandlers.ExcessReport)
	protected.GET("/restaurant/xreport", restaurantHandlers.XReport)
	protected.GET("/restaurant/zreport", restaurantHandlers.ZReport)

	// Manager-only routes
	managerOnly := protected.Group("")
	managerOnly.Use(middleware.RequireManager())
	managerOnly.PUT("/restaurant/:id/revenue", restaurantHandlers.RefreshRevenue)

	log.Printf("restopos server v%s starting on port %d", version, cfg.Server.Port)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Server.Port)))
}
