package cookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWriteHandler(t *testing.T, write func(c *fiber.Ctx)) []*http.Cookie {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		write(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	return resp.Cookies()
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestWriteBothCookies(t *testing.T) {
	accessExp := time.Now().Add(15 * time.Minute)
	refreshExp := time.Now().Add(48 * time.Hour)

	cookies := runWriteHandler(t, func(c *fiber.Ctx) {
		Write(c, "access-value", accessExp, "refresh-value", refreshExp)
	})
	require.Len(t, cookies, 2)

	access := findCookie(cookies, AccessTokenName)
	require.NotNil(t, access)
	assert.Equal(t, "access-value", access.Value)
	assert.Equal(t, "/", access.Path)
	assert.True(t, access.HttpOnly)
	assert.True(t, access.Secure)
	assert.Equal(t, http.SameSiteLaxMode, access.SameSite)
	assert.WithinDuration(t, accessExp, access.Expires, 2*time.Second)

	refresh := findCookie(cookies, RefreshTokenName)
	require.NotNil(t, refresh)
	assert.Equal(t, "refresh-value", refresh.Value)
	assert.WithinDuration(t, refreshExp, refresh.Expires, 2*time.Second)
}

func TestWriteAccessOnly(t *testing.T) {
	cookies := runWriteHandler(t, func(c *fiber.Ctx) {
		Write(c, "access-value", time.Now().Add(time.Minute), "", time.Time{})
	})

	require.Len(t, cookies, 1)
	assert.Equal(t, AccessTokenName, cookies[0].Name)
}

func TestWriteSkipsIncompletePairs(t *testing.T) {
	// A token without an expiry, or an expiry without a token, writes
	// nothing at all.
	cookies := runWriteHandler(t, func(c *fiber.Ctx) {
		Write(c, "access-value", time.Time{}, "", time.Now().Add(time.Hour))
	})
	assert.Empty(t, cookies)

	cookies = runWriteHandler(t, func(c *fiber.Ctx) {
		Write(c, "", time.Time{}, "", time.Time{})
	})
	assert.Empty(t, cookies)
}

func TestRead(t *testing.T) {
	var gotAccess, gotRefresh string

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		gotAccess, gotRefresh = Read(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenName, Value: "a-1"})

	_, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "a-1", gotAccess)
	assert.Empty(t, gotRefresh)
}

func TestClearExpiresBothCookies(t *testing.T) {
	cookies := runWriteHandler(t, func(c *fiber.Ctx) {
		Clear(c)
	})
	require.Len(t, cookies, 2)

	for _, cookieOut := range cookies {
		assert.Empty(t, cookieOut.Value)
		assert.True(t, cookieOut.Expires.Before(time.Now()))
	}
}
