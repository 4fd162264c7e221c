// Package cookie is the wire transport for auth tokens: it writes and
// reads the access_token / refresh_token cookies with fixed security
// attributes.
package cookie

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	AccessTokenName  = "access_token"
	RefreshTokenName = "refresh_token"
)

// Write attaches a cookie for each complete (token, expiry) pair. A
// pair missing either element is skipped, so callers can rewrite just
// the access cookie during renewal and leave the refresh cookie alone.
func Write(c *fiber.Ctx, accessToken string, accessExpiresAt time.Time, refreshToken string, refreshExpiresAt time.Time) {
	if accessToken != "" && !accessExpiresAt.IsZero() {
		set(c, AccessTokenName, accessToken, accessExpiresAt)
	}
	if refreshToken != "" && !refreshExpiresAt.IsZero() {
		set(c, RefreshTokenName, refreshToken, refreshExpiresAt)
	}
}

// Read returns the access and refresh cookie values, empty when absent.
func Read(c *fiber.Ctx) (accessToken, refreshToken string) {
	return c.Cookies(AccessTokenName), c.Cookies(RefreshTokenName)
}

// Clear expires both cookies, used on logout.
func Clear(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)
	set(c, AccessTokenName, "", expired)
	set(c, RefreshTokenName, "", expired)
}

func set(c *fiber.Ctx, name, value string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
