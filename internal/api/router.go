package api

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/eduplatform/courses-api/docs"
	"github.com/eduplatform/courses-api/internal/api/handler"
	"github.com/eduplatform/courses-api/internal/api/middleware"
	"github.com/eduplatform/courses-api/internal/core/domain"
	"github.com/eduplatform/courses-api/internal/core/service"
	"github.com/eduplatform/courses-api/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, jwtSecret, env string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("courses"))

	// --- Dependencies ---
	authRepo := postgres.NewAuthRepository(pool)
	authService := service.NewAuthService(authRepo, jwtSecret, 24*time.Hour)
	authHandler := handler.NewAuthHandler(authService)

	courseRepo := postgres.NewCourseRepository(pool)
	courseService := service.NewCourseService(courseRepo, log)
	courseHandler := handler.NewCourseHandler(courseService)

	authMiddleware := middleware.Auth(jwtSecret)
	managerOnly := middleware.RequireRole(domain.RoleManager)

	// --- Auth routes ---
	e.POST("/sessions", authHandler.Login)
	e.POST("/users", authHandler.Register)

	// --- Course routes ---
	e.POST("/courses", courseHandler.Create, authMiddleware, managerOnly)
	e.GET("/courses", courseHandler.List, authMiddleware)
	e.GET("/courses/:id", courseHandler.Get, authMiddleware)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the database up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	if env == "development" {
		e.GET("/docs/*", echoswagger.WrapHandler)
	}

	return e
}
