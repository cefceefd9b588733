package router

import (
	"time"

	"github.com/amalfamous/QuickCRM/internal/config"
	"github.com/amalfamous/QuickCRM/internal/handler"
	"github.com/amalfamous/QuickCRM/internal/infra"
	"github.com/amalfamous/QuickCRM/internal/middleware"
	"github.com/amalfamous/QuickCRM/internal/model"
	"github.com/amalfamous/QuickCRM/internal/repository"
	"github.com/amalfamous/QuickCRM/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	mailer := infra.NewMailer(cfg)

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	clientRepo := repository.NewClientRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)
	orderRepo := repository.NewPurchaseOrderRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, clientRepo, cfg)
	productSvc := service.NewProductService(productRepo, quoteRepo)
	clientSvc := service.NewClientService(clientRepo, quoteRepo)
	orderSvc := service.NewOrderService(quoteRepo, orderRepo, invoiceRepo, deliveryRepo, productRepo, clientRepo, mailer)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productsH := handler.NewProductHandler(productSvc)
	clientsH := handler.NewClientHandler(clientSvc)
	quotesH := handler.NewQuoteHandler(orderSvc)
	ordersH := handler.NewPurchaseOrderHandler(orderSvc)
	invoicesH := handler.NewInvoiceHandler(orderSvc)
	deliveriesH := handler.NewDeliveryHandler(orderSvc)
	healthH := handler.NewHealthHandler(db)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", healthH.Check)

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Catalog — sales writes, every authenticated role reads
		v1.GET("/products", productsH.List)
		v1.GET("/products/:id", productsH.Get)
		products := v1.Group("/products", middleware.RequireRole(model.RoleSales))
		{
			products.POST("", productsH.Create)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
		}

		clients := v1.Group("/clients", middleware.RequireRole(model.RoleSales))
		{
			clients.POST("", clientsH.Create)
			clients.GET("", clientsH.List)
			clients.GET("/:id", clientsH.Get)
			clients.PUT("/:id", clientsH.Update)
			clients.DELETE("/:id", clientsH.Delete)
		}

		// Quotes — sales drives the lifecycle, the client confirms
		v1.GET("/quotes", middleware.RequireRole(model.RoleSales, model.RoleClient), quotesH.List)
		v1.GET("/quotes/eligible-for-order", middleware.RequireRole(model.RoleSales, model.RoleClient), quotesH.EligibleForOrder)
		v1.GET("/quotes/eligible-for-invoice", middleware.RequireRole(model.RoleSales), quotesH.EligibleForInvoice)
		v1.GET("/quotes/:id", middleware.RequireRole(model.RoleSales, model.RoleClient), quotesH.Get)
		v1.POST("/quotes/:id/confirm", middleware.RequireRole(model.RoleClient), quotesH.Confirm)
		quotes := v1.Group("/quotes", middleware.RequireRole(model.RoleSales))
		{
			quotes.POST("", quotesH.Create)
			quotes.PUT("/:id", quotesH.Update)
			quotes.DELETE("/:id", quotesH.Delete)
			quotes.POST("/:id/cancel", quotesH.Cancel)
		}

		// Purchase orders — the client emits, sales marks received
		v1.POST("/purchase-orders", middleware.RequireRole(model.RoleClient), ordersH.Create)
		v1.GET("/purchase-orders", middleware.RequireRole(model.RoleSales, model.RoleClient), ordersH.List)
		v1.POST("/purchase-orders/:id/receive", middleware.RequireRole(model.RoleSales), ordersH.Receive)

		// Invoices — sales only; payment also schedules the delivery
		v1.GET("/invoices", middleware.RequireRole(model.RoleSales, model.RoleClient), invoicesH.List)
		v1.GET("/invoices/eligible-for-delivery", middleware.RequireRole(model.RoleSales, model.RoleDelivery), invoicesH.EligibleForDelivery)
		invoices := v1.Group("/invoices", middleware.RequireRole(model.RoleSales))
		{
			invoices.POST("", invoicesH.Create)
			invoices.POST("/:id/pay", invoicesH.Pay)
			invoices.POST("/:id/refuse", invoicesH.Refuse)
		}

		// Deliveries — delivery staff confirms, sales can consult
		v1.GET("/deliveries", middleware.RequireRole(model.RoleSales, model.RoleDelivery), deliveriesH.List)
		v1.POST("/deliveries/:id/confirm", middleware.RequireRole(model.RoleDelivery), deliveriesH.Confirm)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
