// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"oxylink/config"
	"oxylink/internal/delivery/http/middleware"
	"oxylink/internal/delivery/http/router/handler"
	"oxylink/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config          *config.Config
	UserHandler     *handler.UserHandler
	ProfileHandler  *handler.ProfileHandler
	SearchHandler   *handler.SearchHandler
	PurchaseHandler *handler.PurchaseHandler
	SellerHandler   *handler.SellerHandler
	AdminHandler    *handler.AdminHandler
	TestHandler     *handler.TestHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	config          *config.Config
	userHandler     *handler.UserHandler
	profileHandler  *handler.ProfileHandler
	searchHandler   *handler.SearchHandler
	purchaseHandler *handler.PurchaseHandler
	sellerHandler   *handler.SellerHandler
	adminHandler    *handler.AdminHandler
	testHandler     *handler.TestHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		config:          params.Config,
		userHandler:     params.UserHandler,
		profileHandler:  params.ProfileHandler,
		searchHandler:   params.SearchHandler,
		purchaseHandler: params.PurchaseHandler,
		sellerHandler:   params.SellerHandler,
		adminHandler:    params.AdminHandler,
		testHandler:     params.TestHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/buyer", r.userHandler.RegisterBuyer)
		authGroup.POST("/register/seller", r.userHandler.RegisterSeller)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Profile routes shared by every authenticated role
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		userGroup.GET("/profile", r.profileHandler.GetProfile)
		userGroup.PUT("/profile", r.profileHandler.UpdateProfile)
		userGroup.PUT("/password", r.profileHandler.ChangePassword)
	}

	// Buyer routes: radius search and purchases
	buyerGroup := e.Group("/buyer")
	buyerGroup.Use(r.authMiddleware.Authenticate)
	buyerGroup.Use(r.authMiddleware.RequireRole(entity.RoleBuyer.String()))
	{
		buyerGroup.GET("/sellers/nearby", r.searchHandler.FindNearbySellers)
		buyerGroup.POST("/purchases", r.purchaseHandler.Purchase)
		buyerGroup.GET("/purchases", r.purchaseHandler.ListPurchases)
	}

	// Seller self-service routes
	sellerGroup := e.Group("/seller")
	sellerGroup.Use(r.authMiddleware.Authenticate)
	sellerGroup.Use(r.authMiddleware.RequireRole(entity.RoleSeller.String()))
	{
		sellerGroup.PUT("/stock", r.sellerHandler.UpdateStock)
		sellerGroup.PUT("/location", r.sellerHandler.UpdateLocation)
		sellerGroup.PUT("/active", r.sellerHandler.SetActive)
		sellerGroup.PUT("/license", r.sellerHandler.UpdateLicense)
		sellerGroup.GET("/orders", r.sellerHandler.ListOrders)
		sellerGroup.GET("/location/qr", r.sellerHandler.LocationQR)
	}

	// Admin console routes
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin.String()))
	{
		adminGroup.GET("/sellers", r.adminHandler.ListSellers)
		adminGroup.PUT("/sellers/:id/approval", r.adminHandler.SetSellerApproval)
		adminGroup.PUT("/sellers/:id", r.adminHandler.UpdateSeller)
		adminGroup.GET("/stats", r.adminHandler.Stats)
		adminGroup.GET("/activity", r.adminHandler.RecentActivity)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)

		testGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
		{
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware)
		}
	}
}
