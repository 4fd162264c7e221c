package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timeseven/ielts-essay-analyzer/internal/domain"
	"github.com/timeseven/ielts-essay-analyzer/internal/repository"
	"github.com/timeseven/ielts-essay-analyzer/pkg/cookie"
)

// stubProfiles serves a single profile keyed by (client, user).
type stubProfiles struct {
	profile *domain.Profile
}

func (s *stubProfiles) Create(context.Context, *domain.Profile) error { return nil }

func (s *stubProfiles) GetByClientAndUser(_ context.Context, clientID, userID uuid.UUID) (*domain.Profile, error) {
	if s.profile != nil && s.profile.ClientID == clientID && s.profile.UserID == userID {
		return s.profile, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubProfiles) TouchLogin(context.Context, uuid.UUID, uuid.UUID) (*domain.Profile, error) {
	return nil, repository.ErrNotFound
}

func identityApp(profiles repository.ProfileRepository) *fiber.App {
	issuer := newTestIssuer()
	app := fiber.New()
	app.Get("/clients/:clientId/profile",
		AuthGate(&spySessions{}, issuer),
		RequireProfile(issuer, profiles),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"client_id": c.Locals(ClientIDKey),
				"user_id":   c.Locals(UserIDKey),
			})
		},
	)
	return app
}

func requestWithAccessToken(t *testing.T, path, accessToken string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(&http.Cookie{Name: cookie.AccessTokenName, Value: accessToken})
	return req
}

func TestRequireProfileSuccess(t *testing.T) {
	clientID := uuid.New()
	userID := uuid.New()
	profiles := &stubProfiles{profile: &domain.Profile{
		ClientID: clientID,
		UserID:   userID,
		Status:   domain.ProfileStatusActive,
	}}

	issuer := newTestIssuer()
	accessToken, _, err := issuer.IssueAccess(clientID.String(), userID.String())
	require.NoError(t, err)

	app := identityApp(profiles)
	resp, err := app.Test(requestWithAccessToken(t, "/clients/"+clientID.String()+"/profile", accessToken))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireProfileClientMismatch(t *testing.T) {
	clientID := uuid.New()
	userID := uuid.New()
	profiles := &stubProfiles{profile: &domain.Profile{ClientID: clientID, UserID: userID}}

	issuer := newTestIssuer()
	accessToken, _, err := issuer.IssueAccess(clientID.String(), userID.String())
	require.NoError(t, err)

	// Addressing another client with a valid token is unauthenticated,
	// not forbidden.
	otherClient := uuid.New()
	app := identityApp(profiles)
	resp, err := app.Test(requestWithAccessToken(t, "/clients/"+otherClient.String()+"/profile", accessToken))
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireProfileForgedToken(t *testing.T) {
	clientID := uuid.New()
	app := identityApp(&stubProfiles{})

	resp, err := app.Test(requestWithAccessToken(t, "/clients/"+clientID.String()+"/profile", "not-a-token"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireProfileRefreshTokenRejected(t *testing.T) {
	clientID := uuid.New()
	userID := uuid.New()
	profiles := &stubProfiles{profile: &domain.Profile{ClientID: clientID, UserID: userID}}

	// A refresh token in the access cookie fails verification under
	// the access key.
	issuer := newTestIssuer()
	pair, err := issuer.IssuePair(clientID.String(), userID.String())
	require.NoError(t, err)

	app := identityApp(profiles)
	resp, err := app.Test(requestWithAccessToken(t, "/clients/"+clientID.String()+"/profile", pair.RefreshToken))
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireProfileMissingProfile(t *testing.T) {
	clientID := uuid.New()
	userID := uuid.New()

	issuer := newTestIssuer()
	accessToken, _, err := issuer.IssueAccess(clientID.String(), userID.String())
	require.NoError(t, err)

	app := identityApp(&stubProfiles{})
	resp, err := app.Test(requestWithAccessToken(t, "/clients/"+clientID.String()+"/profile", accessToken))
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestClientMatches(t *testing.T) {
	assert.True(t, ClientMatches("c-1", "c-1"))
	assert.False(t, ClientMatches("c-1", "c-2"))
	assert.False(t, ClientMatches("", ""))
	assert.False(t, ClientMatches("", "c-1"))
}
