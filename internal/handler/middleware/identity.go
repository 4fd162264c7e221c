package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/timeseven/ielts-essay-analyzer/internal/repository"
	"github.com/timeseven/ielts-essay-analyzer/pkg/token"
)

// ClientMatches reports whether the client id addressed by the request
// path is the one embedded in the token. A mismatch is an
// authentication failure, never a permission error, so probing cannot
// reveal whether a client exists.
func ClientMatches(declaredClientID, tokenClientID string) bool {
	return declaredClientID != "" && declaredClientID == tokenClientID
}

// RequireProfile is the second stage behind AuthGate: it verifies the
// (possibly just-renewed) access token cryptographically, checks it
// against the :clientId path segment, and loads the client-scoped
// profile. Any failure yields the same 401 as the gate itself.
func RequireProfile(issuer *token.Issuer, profiles repository.ProfileRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accessToken, _ := c.Locals(AccessTokenKey).(string)

		claims, err := issuer.VerifyAccess(accessToken)
		if err != nil {
			return unauthenticated(c)
		}

		if claims.Type != token.ClassAccess {
			return unauthenticated(c)
		}

		if !ClientMatches(c.Params("clientId"), claims.ClientID) {
			return unauthenticated(c)
		}

		clientID, err := uuid.Parse(claims.ClientID)
		if err != nil {
			return unauthenticated(c)
		}
		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			return unauthenticated(c)
		}

		profile, err := profiles.GetByClientAndUser(c.Context(), clientID, userID)
		if err != nil {
			return unauthenticated(c)
		}

		c.Locals(ClientIDKey, claims.ClientID)
		c.Locals(UserIDKey, claims.UserID)
		c.Locals(ProfileKey, profile)
		return c.Next()
	}
}
