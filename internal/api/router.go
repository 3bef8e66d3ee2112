package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/lemonqwest/household-api/docs"
	"github.com/lemonqwest/household-api/internal/api/handler"
	"github.com/lemonqwest/household-api/internal/api/middleware"
	"github.com/lemonqwest/household-api/internal/core/domain"
	"github.com/lemonqwest/household-api/internal/core/service"
	"github.com/lemonqwest/household-api/internal/infrastructure/config"
	mongodb "github.com/lemonqwest/household-api/internal/infrastructure/db/mongo"
	redisdb "github.com/lemonqwest/household-api/internal/infrastructure/db/redis"
	"github.com/lemonqwest/household-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("lemonqwest"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb, cfg.Redis.SessionKey)
	authService := service.NewAuthService(userRepo, sessionStore, logger.Get())
	userService := service.NewUserService(userRepo)
	tokens := handler.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authHandler := handler.NewAuthHandler(authService, tokens)
	userHandler := handler.NewUserHandler(userService)

	// --- Auth routes ---
	e.POST("/auth/pin", authHandler.LoginWithPIN)
	e.POST("/auth/child", authHandler.LoginAsChild)
	e.POST("/auth/switch-role", authHandler.SwitchRole)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me)

	// --- User management, caregiver only ---
	users := e.Group("/v1/users", middleware.Auth(cfg.JWTSecret), middleware.RequireRole(domain.RoleCaregiver))
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PATCH("/:id", userHandler.UpdateProfile)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
