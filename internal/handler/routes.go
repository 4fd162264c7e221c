package handler

import (
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(
	app *fiber.App,
	authHandler *AuthHandler,
	profileHandler *ProfileHandler,
	healthHandler *HealthHandler,
	authGate fiber.Handler,
	requireProfile fiber.Handler,
) {
	// Health checks (public)
	app.Get("/health", healthHandler.Health)
	app.Get("/ready", healthHandler.Ready)

	// API v1
	api := app.Group("/api/v1")

	// Auth routes (public)
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)

	// Client-scoped routes (cookie gate, then identity extraction)
	clients := api.Group("/clients/:clientId", authGate, requireProfile)
	clients.Get("/profile", profileHandler.GetProfile)
}
