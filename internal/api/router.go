package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stocklane/inventory-system/internal/api/handler"
	"github.com/stocklane/inventory-system/internal/api/middleware"
	"github.com/stocklane/inventory-system/internal/core/domain"
	"github.com/stocklane/inventory-system/internal/core/service"
	mongodb "github.com/stocklane/inventory-system/internal/infrastructure/db/mongo"
	redisdb "github.com/stocklane/inventory-system/internal/infrastructure/db/redis"
	"github.com/stocklane/inventory-system/internal/infrastructure/queue"
	"github.com/stocklane/inventory-system/pkg/logger"
)

const tokenTTL = 24 * time.Hour

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the stock dispatcher, which the caller must Start.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, stockWorkers int) (*echo.Echo, *queue.Dispatcher) {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	itemRepo := mongodb.NewItemRepository(db)
	entityRepo := mongodb.NewEntityRepository(db)
	saleRepo := mongodb.NewSaleRepository(db)
	movementRepo := mongodb.NewMovementRepository(db)

	// --- Stock pipeline ---
	stockService := service.NewStockService(itemRepo, movementRepo, redisdb.NewDedupChecker(rdb), log)
	dispatcher := queue.NewDispatcher(stockWorkers, stockService, log)

	// --- Services ---
	authService := service.NewAuthService(userRepo, jwtSecret, tokenTTL)
	userService := service.NewUserService(userRepo, log)
	itemService := service.NewItemService(itemRepo, log)
	entityService := service.NewEntityService(entityRepo, log)
	saleService := service.NewSaleService(saleRepo, itemRepo, dispatcher, log)
	dashboardService := service.NewDashboardService(userRepo, itemRepo, saleRepo, redisdb.NewOverviewCache(rdb), log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	itemHandler := handler.NewItemHandler(itemService)
	entityHandler := handler.NewEntityHandler(entityService)
	saleHandler := handler.NewSaleHandler(saleService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	auth := middleware.Auth(jwtSecret)
	staff := middleware.RBAC(domain.RoleAdmin, domain.RoleEmployee)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Account routes (any authenticated user) ---
	account := e.Group("/auth", auth)
	account.GET("/profile", authHandler.Profile)
	account.PUT("/profile", authHandler.UpdateProfile)
	account.PUT("/password", authHandler.ChangePassword)

	// --- Inventory items ---
	items := e.Group("/items", auth, staff)
	items.GET("/get", itemHandler.List)
	items.POST("/add", itemHandler.Create)
	items.GET("/:id", itemHandler.Get)
	items.PUT("/:id", itemHandler.Update)
	items.DELETE("/:id", itemHandler.Delete)

	// --- Buyers and suppliers ---
	entities := e.Group("/entities", auth, staff)
	entities.GET("", entityHandler.List)
	entities.POST("", entityHandler.Create)
	entities.PUT("/:id", entityHandler.Update)
	entities.DELETE("/:id", entityHandler.Delete)

	// --- Sales ---
	sales := e.Group("/sales", auth, staff)
	sales.GET("", saleHandler.List)
	sales.POST("", saleHandler.Create)
	sales.GET("/:id", saleHandler.Get)
	sales.PUT("/:id", saleHandler.Update)
	sales.DELETE("/:id", saleHandler.Delete)

	// --- Dashboard ---
	dashboard := e.Group("/dashboard", auth, staff)
	dashboard.GET("/overview", dashboardHandler.Overview)

	// --- User administration ---
	users := e.Group("/users", auth)
	users.GET("", userHandler.List, staff)
	users.PUT("/:id/role", userHandler.ChangeRole, adminOnly)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	return e, dispatcher
}
