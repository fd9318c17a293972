package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/shoprecords/records-api/docs"
	"github.com/shoprecords/records-api/internal/api/handler"
	"github.com/shoprecords/records-api/internal/api/metrics"
	"github.com/shoprecords/records-api/internal/api/middleware"
	"github.com/shoprecords/records-api/internal/core/domain"
	"github.com/shoprecords/records-api/internal/core/ports"
	"github.com/shoprecords/records-api/internal/infrastructure/http/handlers"
)

// Services bundles the use cases the HTTP layer exposes.
type Services struct {
	Auth      ports.AuthService
	Shops     ports.ShopService
	Employees ports.EmployeeService
	Documents ports.DocumentService
	Users     ports.UserService
	Uploads   ports.UploadService
	Audit     ports.AuditService
}

// Options tunes the router.
type Options struct {
	CORSOrigins    []string
	UploadMaxBytes int64
	// Readiness is mounted at /api/health/ready when set.
	Readiness *handlers.ReadinessHandler
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(metrics.Middleware())
	e.Use(middleware.RequestLogger(log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: opts.CORSOrigins,
		AllowHeaders: []string{
			echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept,
			echo.HeaderAuthorization, handler.IdempotencyKeyHeader,
		},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))
	uploadMax := opts.UploadMaxBytes
	if uploadMax <= 0 {
		uploadMax = defaultUploadMaxBytes
	}
	// The upload route caps its own body in the handler.
	e.Use(echomiddleware.BodyLimitWithConfig(echomiddleware.BodyLimitConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == UploadPath
		},
		Limit: bodyLimit(uploadMax),
	}))

	// --- Operational endpoints (no auth required) ---
	e.GET("/metrics", metrics.Handler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	api.GET("/health", handlers.NewHealthHandler().Liveness)
	if opts.Readiness != nil {
		api.GET("/health/ready", opts.Readiness.Readiness)
	}

	// --- Auth ---
	authHandler := handler.NewAuthHandler(svc.Auth)
	authMiddleware := middleware.Auth(svc.Auth)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/verify", authHandler.Verify, authMiddleware)

	protected := api.Group("", authMiddleware)

	// --- Shops ---
	shops := handler.NewShopHandler(svc.Shops)
	protected.GET("/shops", shops.List)
	protected.POST("/shops", shops.Create)
	protected.GET("/shops/:id", shops.Get)
	protected.PUT("/shops/:id", shops.Update)
	protected.DELETE("/shops/:id", shops.Delete)

	// --- Employees ---
	employees := handler.NewEmployeeHandler(svc.Employees)
	protected.GET("/employees", employees.List)
	protected.POST("/employees", employees.Create)
	protected.GET("/employees/:id", employees.Get)
	protected.PUT("/employees/:id", employees.Update)
	protected.DELETE("/employees/:id", employees.Delete)

	// --- Documents --- (static segments before /:id)
	documents := handler.NewDocumentHandler(svc.Documents)
	protected.GET("/documents", documents.List)
	protected.POST("/documents", documents.Create)
	protected.GET("/documents/types/list", documents.Types)
	protected.GET("/documents/stats/summary", documents.Stats)
	protected.GET("/documents/:id", documents.Get)
	protected.PUT("/documents/:id", documents.Update)
	protected.DELETE("/documents/:id", documents.Delete)

	// --- Upload ---
	protected.POST("/upload", handler.NewUploadHandler(svc.Uploads, uploadMax).Upload)

	// --- Admin only ---
	admin := protected.Group("", middleware.RBAC(domain.RoleAdmin))

	users := handler.NewUserHandler(svc.Users)
	admin.GET("/users", users.List)
	admin.POST("/users", users.Create)
	admin.GET("/users/:id", users.Get)
	admin.PUT("/users/:id", users.Update)
	admin.DELETE("/users/:id", users.Delete)

	admin.GET("/audit", handler.NewAuditHandler(svc.Audit).List)

	return e
}

// UploadPath is the multipart upload endpoint.
const UploadPath = "/api/upload"

const defaultUploadMaxBytes = 5 << 20

// bodyLimit leaves room for a base64 file inlined in a document body.
func bodyLimit(uploadMax int64) string {
	if uploadMax <= 0 {
		uploadMax = defaultUploadMaxBytes
	}
	return fmt.Sprintf("%dK", (uploadMax*2+1<<20)/1024)
}
