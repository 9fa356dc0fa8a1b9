package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/carelink/call-center-api/internal/api/handler"
	"github.com/carelink/call-center-api/internal/api/middleware"
	"github.com/carelink/call-center-api/internal/core/domain"
	"github.com/carelink/call-center-api/internal/core/service"
	redisdb "github.com/carelink/call-center-api/internal/infrastructure/db/redis"
	"github.com/carelink/call-center-api/internal/infrastructure/store"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("callcenter"))

	// --- Record store ---
	kv := redisdb.NewKV(rdb)
	users := store.NewCollection[domain.User](kv, "users", domain.ErrUserNotFound)
	clients := store.NewCollection[domain.Client](kv, "clients", domain.ErrClientNotFound)
	categories := store.NewCollection[domain.Category](kv, "categories", domain.ErrCategoryNotFound)
	calls := store.NewCollection[domain.Call](kv, "calls", domain.ErrCallNotFound)
	session := store.NewSession(kv)

	// --- Services ---
	authService := service.NewAuthService(users, session, jwtSecret, tokenTTL, log)
	directory := service.NewDirectoryService(clients, categories, calls)
	callService := service.NewCallService(calls, log)
	reportService := service.NewReportService(directory, clients, log)
	userService := service.NewUserService(users, clients, categories, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	dashboardHandler := handler.NewDashboardHandler(directory)
	callHandler := handler.NewCallHandler(callService, directory)
	reportHandler := handler.NewReportHandler(reportService)
	adminHandler := handler.NewAdminHandler(userService)

	authMW := middleware.Auth(jwtSecret, users)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMW)
	e.GET("/auth/me", authHandler.Me, authMW)

	// --- Authenticated API ---
	v1 := e.Group("/v1", authMW)
	v1.GET("/dashboard", dashboardHandler.Dashboard)
	v1.GET("/clients", dashboardHandler.Clients)
	v1.GET("/categories", dashboardHandler.Categories)
	v1.POST("/calls", callHandler.Create)
	v1.GET("/calls", callHandler.List)
	v1.GET("/reports", reportHandler.List)
	v1.GET("/reports/export", reportHandler.Export)

	// --- Admin surface ---
	admin := v1.Group("/admin", middleware.RBAC(domain.RoleAdmin))
	admin.GET("/users", adminHandler.ListUsers)
	admin.POST("/users", adminHandler.CreateUser)
	admin.PATCH("/users/:id", adminHandler.UpdateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.POST("/users/:id/clients/:clientId", adminHandler.ToggleAssignment)
	admin.GET("/clients", adminHandler.ListClients)
	admin.POST("/clients", adminHandler.CreateClient)
	admin.PATCH("/clients/:id", adminHandler.UpdateClient)
	admin.DELETE("/clients/:id", adminHandler.DeleteClient)
	admin.GET("/categories", adminHandler.ListCategories)
	admin.POST("/categories", adminHandler.CreateCategory)
	admin.PATCH("/categories/:id", adminHandler.UpdateCategory)
	admin.DELETE("/categories/:id", adminHandler.DeleteCategory)

	// --- Probes and metrics (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(rdb).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
