package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/Ajayhariharan/activax/docs" // Swagger docs
	"github.com/Ajayhariharan/activax/internal/api/handler"
	"github.com/Ajayhariharan/activax/internal/api/middleware"
	"github.com/Ajayhariharan/activax/internal/core/domain"
	"github.com/Ajayhariharan/activax/internal/core/service"
	"github.com/Ajayhariharan/activax/internal/core/store"
	"github.com/Ajayhariharan/activax/internal/infrastructure/db/sqlite"
	"github.com/Ajayhariharan/activax/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(st *store.Store, db *sqlite.Store, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("activax"))

	// --- Dependencies ---
	sessionService := service.NewSessionService(st, cfg.SessionSecret, cfg.SessionTTL, log)
	userService := service.NewUserService(st, log)
	activityService := service.NewActivityService(st, log)
	permissionService := service.NewPermissionService(st, log)
	dashboardService := service.NewDashboardService(st)

	authHandler := handler.NewAuthHandler(sessionService, userService)
	userHandler := handler.NewUserHandler(userService)
	activityHandler := handler.NewActivityHandler(activityService)
	permissionHandler := handler.NewPermissionHandler(permissionService)
	profileHandler := handler.NewProfileHandler(userService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db)

	authRequired := middleware.Auth(sessionService)
	optionalAuth := middleware.OptionalAuth(sessionService)

	// --- Public surface ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"service": "activax", "status": "ok"})
	})
	e.GET("/login", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "authenticate via POST /login"})
	})
	e.POST("/login", authHandler.Login)
	e.POST("/register", authHandler.Register)
	e.GET("/sections", authHandler.Sections, optionalAuth)
	e.GET("/managers", userHandler.Managers, optionalAuth)

	// --- Session required ---
	e.POST("/logout", authHandler.Logout, authRequired)
	e.GET("/dashboard", dashboardHandler.Get, authRequired)

	users := e.Group("/users", authRequired)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create, middleware.RBAC(domain.RoleAdmin, domain.RoleManager))
	users.PUT("/:id", userHandler.Update, middleware.RBAC(domain.RoleAdmin, domain.RoleManager))
	users.DELETE("/:id", userHandler.Delete, middleware.RBAC(domain.RoleAdmin))

	mine := e.Group("/my-activity", authRequired)
	mine.GET("", activityHandler.Mine)
	mine.POST("", activityHandler.Add)
	mine.PUT("/:id", activityHandler.Update)
	mine.DELETE("/:id", activityHandler.Delete)

	browse := e.Group("/user-activity", authRequired, middleware.RBAC(domain.RoleAdmin, domain.RoleManager))
	browse.GET("", activityHandler.Browse)
	browse.PUT("/:id", activityHandler.Update)
	browse.DELETE("/:id", activityHandler.Delete)

	perms := e.Group("/user-permissions", authRequired, middleware.RBAC(domain.RoleManager))
	perms.GET("", permissionHandler.Team)
	perms.POST("/:id/draft", permissionHandler.Begin)
	perms.POST("/:id/toggle", permissionHandler.Toggle)
	perms.POST("/:id/commit", permissionHandler.Commit)
	perms.DELETE("/:id/draft", permissionHandler.Discard)

	profile := e.Group("/profile", authRequired)
	profile.GET("", profileHandler.Get)
	profile.PUT("/password", profileHandler.ChangePassword)
	profile.PUT("/photo", profileHandler.SetPhoto)

	// --- Operational surface (no auth required) ---
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – is the durable store up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
