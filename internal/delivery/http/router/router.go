// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"krishihive/internal/delivery/http/middleware"
	"krishihive/internal/delivery/http/router/handler"
	"krishihive/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler *handler.SessionHandler
	CartHandler    *handler.CartHandler
	CatalogHandler *handler.CatalogHandler
	SellerHandler  *handler.SellerHandler
	AdminHandler   *handler.AdminHandler
	LedgerHandler  *handler.LedgerHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler *handler.SessionHandler
	cartHandler    *handler.CartHandler
	catalogHandler *handler.CatalogHandler
	sellerHandler  *handler.SellerHandler
	adminHandler   *handler.AdminHandler
	ledgerHandler  *handler.LedgerHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler: params.SessionHandler,
		cartHandler:    params.CartHandler,
		catalogHandler: params.CatalogHandler,
		sellerHandler:  params.SellerHandler,
		adminHandler:   params.AdminHandler,
		ledgerHandler:  params.LedgerHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session routes; both run the token check first
	authGroup := e.Group("/auth")
	authGroup.Use(r.authMiddleware.Authenticate)
	{
		authGroup.POST("/session", r.sessionHandler.StartSession)
		authGroup.DELETE("/session", r.sessionHandler.EndSession)
	}

	// Public catalog browsing
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/products", r.catalogHandler.ListProducts)
		catalogGroup.GET("/products/:id", r.catalogHandler.GetProduct)
	}

	// Cart routes require a signed-in user
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:id", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/save", r.cartHandler.SaveCart)
		cartGroup.POST("/checkout", r.cartHandler.Checkout)
	}

	// Order history for the signed-in buyer
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("", r.cartHandler.ListOrders)
	}

	// Seller routes require a signed-in user
	sellerGroup := e.Group("/seller")
	sellerGroup.Use(r.authMiddleware.Authenticate)
	{
		sellerGroup.POST("/products", r.sellerHandler.CreateProduct)
	}

	// Admin routes require the admin role, re-checked on every request
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.PUT("/users/:uid/role", r.adminHandler.SetRole)
	}

	// Ledger reads for any signed-in member; writes for managers and admins
	ledgerGroup := e.Group("/ledger")
	ledgerGroup.Use(r.authMiddleware.Authenticate)
	{
		ledgerGroup.GET("/transactions", r.ledgerHandler.ListTransactions)
		ledgerGroup.POST("/transactions", r.ledgerHandler.RecordTransaction,
			r.authMiddleware.RequireRole(entity.RoleManager, entity.RoleAdmin))
		ledgerGroup.GET("/accounts", r.ledgerHandler.ListAccounts)
	}

	// Public market price board
	marketGroup := e.Group("/market")
	{
		marketGroup.GET("/prices", r.ledgerHandler.ListMarketPrices)
	}
}
