package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/fullstack-labs/user-service/internal/api/handler"
	"github.com/fullstack-labs/user-service/internal/api/middleware"
	"github.com/fullstack-labs/user-service/internal/core/auth"
	"github.com/fullstack-labs/user-service/internal/core/domain"
	"github.com/fullstack-labs/user-service/internal/core/ports"
	"github.com/fullstack-labs/user-service/internal/core/service"
)

// RouterDeps carries the external collaborators the router wires together.
// DB and Redis are only consulted by the readiness probe; the request path
// reaches them through the repositories.
type RouterDeps struct {
	Users  ports.UserRepository
	DB     *sql.DB
	Redis  *redis.Client
	Tokens *auth.TokenManager
	Audit  ports.AuditSink
	Log    zerolog.Logger

	// Metrics disables the echoprometheus middleware when false, so test
	// routers can be built without touching the default registry twice.
	Metrics bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	if d.Metrics {
		e.Use(echoprometheus.NewMiddleware("userservice"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	// --- Dependencies ---
	authService := service.NewAuthService(d.Users, d.Tokens, d.Audit)
	userService := service.NewUserService(d.Users, d.Audit)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(userService)
	userHandler := handler.NewUserHandler(userService)

	authenticated := middleware.Auth(d.Tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	g := e.Group("/api")
	g.POST("/register", authHandler.Register)
	g.POST("/login", authHandler.Login)

	// --- Authenticated self-service ---
	g.GET("/me", authHandler.Me, authenticated)
	g.GET("/profile", profileHandler.Get, authenticated)
	g.PUT("/profile", profileHandler.Update, authenticated)
	g.PUT("/profile/password", profileHandler.ChangePassword, authenticated)
	g.DELETE("/profile", profileHandler.Delete, authenticated)

	// --- Admin-only user CRUD ---
	admin := g.Group("/users", authenticated, adminOnly)
	admin.GET("", userHandler.List)
	admin.POST("", userHandler.Create)
	admin.GET("/:id", userHandler.Get)
	admin.PUT("/:id", userHandler.Update)
	admin.DELETE("/:id", userHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness) // liveness  – is the process alive?
	if d.DB != nil && d.Redis != nil {
		healthDepsHandler := handler.NewHealthDependenciesHandler(d.DB, d.Redis)
		e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	}

	return e
}
