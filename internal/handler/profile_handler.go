package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/timeseven/ielts-essay-analyzer/internal/domain"
	"github.com/timeseven/ielts-essay-analyzer/internal/handler/middleware"
)

type ProfileHandler struct{}

func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

// GetProfile returns the caller's profile for the addressed client.
// The profile was already loaded by the identity middleware.
// GET /api/v1/clients/:clientId/profile
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	profile, ok := c.Locals(middleware.ProfileKey).(*domain.Profile)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Success",
		"data":    profile,
	})
}
