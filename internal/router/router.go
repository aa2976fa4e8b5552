// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/edenspa/eden-spa-api/internal/config"
	"github.com/edenspa/eden-spa-api/internal/handler"
	"github.com/edenspa/eden-spa-api/internal/middleware"
	"github.com/edenspa/eden-spa-api/internal/repository"
)

// Handlers bundles every handler the router wires up.
type Handlers struct {
	Auth    *handler.AuthHandler
	Booking *handler.BookingHandler
	Cart    *handler.CartHandler
	Prompt  *handler.PromptHandler
	Catalog *handler.CatalogHandler
}

// Register wires all routes onto the Echo instance. Public surface: the
// health probe, the cached catalog listings and the auth entry points.
// Everything else requires a live session (valid JWT whose jti is still
// present in Redis).
func Register(e *echo.Echo, cfg config.Config, rdb *redis.Client, sessions *repository.SessionStore, h Handlers) {
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	e.GET("/healthz", handler.Health)

	// Public catalog browse, response-cached.
	pub := e.Group("/v1", limiter)
	pub.GET("/services", h.Catalog.ListServices, cache)
	pub.GET("/products", h.Catalog.ListProducts, cache)

	// Account entry points.
	authGroup := e.Group("/v1/auth", limiter)
	authGroup.POST("/register", h.Auth.Register)
	authGroup.POST("/login", h.Auth.Login)

	// Session-scoped surface.
	auth := e.Group("/v1", middleware.SessionAuth(cfg.JWTSecret, sessions), limiter)
	auth.GET("/session", h.Auth.Session)
	auth.POST("/auth/logout", h.Auth.Logout)

	auth.POST("/booking/dialog", h.Booking.OpenDialog)
	auth.GET("/booking/dialog", h.Booking.GetDialog)
	auth.POST("/booking/dialog/month", h.Booking.NavigateMonth)
	auth.POST("/booking/dialog/date", h.Booking.SelectDate)
	auth.POST("/booking/dialog/time", h.Booking.SelectTime)
	auth.POST("/booking/dialog/confirm", h.Booking.Confirm)
	auth.DELETE("/booking/dialog", h.Booking.CloseDialog)
	auth.GET("/appointments", h.Booking.ListAppointments)
	auth.DELETE("/appointments/:id", h.Booking.CancelAppointment)

	auth.GET("/cart", h.Cart.Get)
	auth.POST("/cart/items", h.Cart.AddItem)
	auth.DELETE("/cart/items/:id", h.Cart.RemoveItem)
	auth.POST("/cart/checkout", h.Cart.Checkout)
	auth.GET("/cart/order", h.Cart.GetOrder)
	auth.DELETE("/cart/order", h.Cart.DismissOrder)

	auth.GET("/prompt", h.Prompt.Get)
	auth.POST("/prompt/:id/accept", h.Prompt.Accept)
	auth.POST("/prompt/:id/decline", h.Prompt.Decline)
}
