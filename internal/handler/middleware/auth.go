package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/timeseven/ielts-essay-analyzer/pkg/cookie"
	"github.com/timeseven/ielts-essay-analyzer/pkg/session"
	"github.com/timeseven/ielts-essay-analyzer/pkg/token"
)

// Locals keys set by the auth middlewares.
const (
	AccessTokenKey = "access_token"
	ClientIDKey    = "client_id"
	UserIDKey      = "user_id"
	ProfileKey     = "profile"
)

// SessionReader is the slice of the session store the gate needs.
type SessionReader interface {
	Get(ctx context.Context, refreshToken string) (*session.Record, error)
}

// AuthGate decides whether the request carries a usable credential and
// transparently renews an expired access cookie from the refresh
// session. It is a presence gate, not a validation: when the access
// cookie exists its raw value is passed through untouched, and the
// cryptographic check happens in RequireProfile. Every failure
// collapses to the same 401 so callers cannot probe which step failed.
func AuthGate(sessions SessionReader, issuer *token.Issuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accessToken, refreshToken := cookie.Read(c)

		if accessToken != "" {
			c.Locals(AccessTokenKey, accessToken)
			return c.Next()
		}

		if refreshToken == "" {
			return unauthenticated(c)
		}

		record, err := sessions.Get(c.Context(), refreshToken)
		if err != nil {
			return unauthenticated(c)
		}

		newAccess, expiresAt, err := issuer.IssueAccess(record.ClientID, record.UserID)
		if err != nil {
			return unauthenticated(c)
		}

		// Only the access cookie is rewritten; the refresh cookie and
		// its session stay valid until natural expiry.
		cookie.Write(c, newAccess, expiresAt, "", time.Time{})

		c.Locals(AccessTokenKey, newAccess)
		return c.Next()
	}
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Not authenticated",
	})
}
