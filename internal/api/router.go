package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/acmecorp/adminboard/internal/api/handler"
	"github.com/acmecorp/adminboard/internal/api/middleware"
	"github.com/acmecorp/adminboard/internal/core/service"
	"github.com/acmecorp/adminboard/internal/infrastructure/config"
	mongodb "github.com/acmecorp/adminboard/internal/infrastructure/db/mongo"
	redisdb "github.com/acmecorp/adminboard/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("adminboard"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	showcaseRepo := mongodb.NewShowcaseRepository(db)
	revocation := redisdb.NewRevocationStore(rdb)

	authService := service.NewAuthService(userRepo, revocation, cfg.JWTSecret, log)
	userService := service.NewUserService(userRepo, log)
	showcaseService := service.NewShowcaseService(showcaseRepo, log)

	authHandler := handler.NewAuthHandler(authService, cfg.IsProduction())
	userHandler := handler.NewUserHandler(userService)
	showcaseHandler := handler.NewShowcaseHandler(showcaseService)
	pageHandler := handler.NewPageHandler(cfg.StaticDir)

	apiGate := middleware.Session(middleware.SessionConfig{
		Secret:  cfg.JWTSecret,
		Revoked: revocation,
	})
	pageGate := middleware.Session(middleware.SessionConfig{
		Secret:          cfg.JWTSecret,
		Revoked:         revocation,
		RedirectToLogin: true,
	})
	publicPage := middleware.RedirectAuthenticated(cfg.JWTSecret, revocation)

	// --- Auth routes (public) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Protected API routes ---
	users := e.Group("/users", apiGate)
	users.GET("", userHandler.List)
	users.PUT("/preferences", userHandler.UpdatePreferences)

	showcase := e.Group("/showcase", apiGate)
	showcase.POST("", showcaseHandler.Create)
	showcase.GET("", showcaseHandler.List)
	showcase.PUT("", showcaseHandler.Update)
	showcase.PUT("/:id", showcaseHandler.Update)
	showcase.DELETE("", showcaseHandler.Delete)

	// --- Page routes ---
	// The SPA bundle is served behind the session gate; unauthenticated
	// visitors are redirected to /login, and authenticated visitors who
	// hit the public pages are sent back to /dashboard.
	for _, path := range []string{"/dashboard", "/user", "/profile"} {
		e.GET(path, pageHandler.Serve, pageGate)
	}
	for _, path := range []string{"/login", "/register"} {
		e.GET(path, pageHandler.Serve, publicPage)
	}

	// --- Ops surface ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
