package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/playbase/backend/internal/infrastructure/auth"
	"github.com/playbase/backend/internal/infrastructure/config"
	"github.com/playbase/backend/internal/interfaces/http/handler"
	"github.com/playbase/backend/internal/interfaces/http/middleware"
)

// Dependencies holds everything the router needs to wire up routes
type Dependencies struct {
	Config    *config.Config
	Logger    *zap.Logger
	JWT       *auth.JWTService
	Blacklist middleware.TokenChecker
	RateLimit gin.HandlerFunc

	Auth        *handler.AuthHandler
	Order       *handler.OrderHandler
	Repair      *handler.RepairHandler
	Product     *handler.ProductHandler
	SavedConfig *handler.ConfigHandler
	Timeline    *handler.TimelineHandler
	Report      *handler.ReportHandler
	Health      *handler.HealthHandler
}

// New builds the gin engine with middleware and all application routes
func New(deps Dependencies) *gin.Engine {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(deps.Config.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(deps.Config.HTTP.TrustedProxies)
	}

	engine.Use(
		middleware.RequestID(),
		middleware.RequestLogger(deps.Logger),
		middleware.Recovery(deps.Logger),
		cors.New(cors.Config{
			AllowOrigins:     deps.Config.HTTP.CORSAllowOrigins,
			AllowMethods:     deps.Config.HTTP.CORSAllowMethods,
			AllowHeaders:     deps.Config.HTTP.CORSAllowHeaders,
			AllowCredentials: true,
		}),
	)
	if deps.RateLimit != nil {
		engine.Use(deps.RateLimit)
	}

	engine.GET("/healthz", deps.Health.Live)
	engine.GET("/readyz", deps.Health.Ready)

	api := engine.Group("/api/v1")
	registerPublicRoutes(api, deps)

	authed := api.Group("")
	authed.Use(middleware.Auth(deps.JWT, deps.Blacklist, deps.Logger))
	registerAuthenticatedRoutes(authed, deps)

	admin := authed.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	registerAdminRoutes(admin, deps)

	return engine
}

func registerPublicRoutes(api *gin.RouterGroup, deps Dependencies) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", deps.Auth.Register)
		authGroup.POST("/login", deps.Auth.Login)
	}

	products := api.Group("/products")
	{
		products.GET("", deps.Product.List)
		products.GET("/:id", deps.Product.Get)
	}
}

func registerAuthenticatedRoutes(authed *gin.RouterGroup, deps Dependencies) {
	authGroup := authed.Group("/auth")
	{
		authGroup.POST("/logout", deps.Auth.Logout)
		authGroup.GET("/me", deps.Auth.Me)
		authGroup.POST("/change-password", deps.Auth.ChangePassword)
	}

	orders := authed.Group("/orders")
	{
		orders.POST("", deps.Order.Create)
		orders.GET("", deps.Order.List)
		orders.GET("/:id", deps.Order.Get)
		orders.GET("/:id/invoice", deps.Order.GetInvoice)
		orders.GET("/:id/timeline", deps.Timeline.ForOrder)
		orders.GET("/number/:number", deps.Order.GetByNumber)
	}

	repairs := authed.Group("/repairs")
	{
		repairs.POST("", deps.Repair.Create)
		repairs.GET("", deps.Repair.List)
		repairs.GET("/:id", deps.Repair.Get)
		repairs.GET("/:id/timeline", deps.Timeline.ForRepair)
		repairs.GET("/number/:number", deps.Repair.GetByNumber)
	}

	configs := authed.Group("/configs")
	{
		configs.POST("", deps.SavedConfig.Save)
		configs.GET("", deps.SavedConfig.List)
		configs.GET("/:id", deps.SavedConfig.Get)
		configs.DELETE("/:id", deps.SavedConfig.Delete)
	}
}

func registerAdminRoutes(admin *gin.RouterGroup, deps Dependencies) {
	admin.GET("/dashboard", deps.Report.Dashboard)

	orders := admin.Group("/orders")
	{
		orders.PATCH("/:id/status", deps.Order.UpdateStatus)
	}

	repairs := admin.Group("/repairs")
	{
		repairs.PATCH("/:id/status", deps.Repair.UpdateStatus)
		repairs.PATCH("/:id/technician", deps.Repair.AssignTechnician)
		repairs.PATCH("/:id/estimated-value", deps.Repair.SetEstimatedValue)
	}

	products := admin.Group("/products")
	{
		products.GET("", deps.Product.List)
		products.POST("", deps.Product.Create)
		products.PUT("/:id", deps.Product.Update)
		products.PATCH("/:id/stock", deps.Product.AdjustStock)
		products.DELETE("/:id", deps.Product.Delete)
	}
}
