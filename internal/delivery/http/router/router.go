// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"elegance/internal/delivery/http/middleware"
	"elegance/internal/delivery/http/router/handler"
	"elegance/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MenuHandler     *handler.MenuHandler
	CartHandler     *handler.CartHandler
	AuthHandler     *handler.AuthHandler
	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	menuHandler     *handler.MenuHandler
	cartHandler     *handler.CartHandler
	authHandler     *handler.AuthHandler
	checkoutHandler *handler.CheckoutHandler
	orderHandler    *handler.OrderHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		menuHandler:     params.MenuHandler,
		cartHandler:     params.CartHandler,
		authHandler:     params.AuthHandler,
		checkoutHandler: params.CheckoutHandler,
		orderHandler:    params.OrderHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Catalog routes, public
	menuGroup := e.Group("/menu")
	{
		menuGroup.GET("", r.menuHandler.ListItems)
		menuGroup.GET("/featured", r.menuHandler.ListFeatured)
		menuGroup.GET("/categories", r.menuHandler.ListCategories)
		menuGroup.GET("/categories/:categoryId", r.menuHandler.ListByCategory)
		menuGroup.GET("/items/:id", r.menuHandler.GetItem)
	}

	// Cart routes, public: the cart belongs to the storefront session, not
	// to an account
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:id", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.Clear)
	}

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Profile requires authentication
	e.GET("/profile", r.authHandler.Profile, r.authMiddleware.Authenticate)

	// Checkout is public; the submitted form carries the customer identity
	e.POST("/checkout", r.checkoutHandler.Checkout)

	// Order history requires authentication
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.GET("/:id/receipt", r.orderHandler.GetReceipt)
	}

	// Admin routes require authentication and the admin role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin.String()))
	{
		adminGroup.PATCH("/orders/:id/status", r.orderHandler.UpdateStatus)
	}
}
