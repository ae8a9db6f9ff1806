package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/burger-queen/ordering-api/internal/api/handler"
	"github.com/burger-queen/ordering-api/internal/api/middleware"
	"github.com/burger-queen/ordering-api/internal/core/service"
	"github.com/burger-queen/ordering-api/internal/infrastructure/auth"
	"github.com/burger-queen/ordering-api/internal/infrastructure/config"
	mongodb "github.com/burger-queen/ordering-api/internal/infrastructure/db/mongo"
	redisdb "github.com/burger-queen/ordering-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("ordering"))

	// --- Infrastructure ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	hasher := auth.NewBcryptHasher()
	throttle := redisdb.NewLoginThrottle(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, tokens, hasher, throttle, log)
	userService := service.NewUserService(userRepo, hasher, log)
	productService := service.NewProductService(productRepo, log)
	orderService := service.NewOrderService(orderRepo, userRepo, productRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, cfg.PageLimitMax)
	productHandler := handler.NewProductHandler(productService, cfg.PageLimitMax)
	orderHandler := handler.NewOrderHandler(orderService, cfg.PageLimitMax)
	healthHandler := handler.NewHealthHandler(db, rdb)

	// Token holders become known identities; everyone else passes through
	// anonymous and is stopped by the per-route guards below.
	e.Use(middleware.Authenticate(tokens, userRepo))

	// --- Auth ---
	e.POST("/auth", authHandler.Login)

	// --- Users ---
	users := e.Group("/users")
	users.GET("", userHandler.List, middleware.RequireAdmin())
	users.POST("", userHandler.Create)
	users.GET("/:uid", userHandler.Get, middleware.RequireSelfOrAdmin("uid"))
	users.PATCH("/:uid", userHandler.Update, middleware.RequireSelfOrAdmin("uid"))
	users.DELETE("/:uid", userHandler.Delete, middleware.RequireSelfOrAdmin("uid"))

	// --- Products ---
	products := e.Group("/products")
	products.GET("", productHandler.List, middleware.RequireAuth())
	products.GET("/:productId", productHandler.Get, middleware.RequireAuth())
	products.POST("", productHandler.Create, middleware.RequireAdmin())
	products.PUT("/:productId", productHandler.Update, middleware.RequireAdmin())
	products.DELETE("/:productId", productHandler.Delete, middleware.RequireAdmin())

	// --- Orders ---
	orders := e.Group("/orders", middleware.RequireAuth())
	orders.GET("", orderHandler.List)
	orders.POST("", orderHandler.Create)
	orders.GET("/:orderId", orderHandler.Get)
	orders.PATCH("/:orderId", orderHandler.Update)
	orders.DELETE("/:orderId", orderHandler.Delete)

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
