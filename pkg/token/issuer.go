package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer holds the per-class signing keys and lifetimes loaded at
// startup. It is constructed once in main and shared read-only by the
// auth service and middleware.
type Issuer struct {
	accessKey  []byte
	refreshKey []byte
	method     jwt.SigningMethod
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// Pair is a freshly minted access/refresh token pair.
type Pair struct {
	AccessToken      string    `json:"access_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshToken     string    `json:"refresh_token"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

func NewIssuer(accessKey, refreshKey []byte, method jwt.SigningMethod, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		accessKey:  accessKey,
		refreshKey: refreshKey,
		method:     method,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssueAccess mints a single access token, used when renewing from a
// refresh session without touching the refresh token.
func (i *Issuer) IssueAccess(clientID, userID string) (string, time.Time, error) {
	return Issue(ClassAccess, i.accessKey, i.method, i.accessTTL, clientID, userID)
}

// IssuePair mints both tokens for login and registration.
func (i *Issuer) IssuePair(clientID, userID string) (*Pair, error) {
	accessToken, accessExpiresAt, err := i.IssueAccess(clientID, userID)
	if err != nil {
		return nil, err
	}

	refreshToken, refreshExpiresAt, err := Issue(ClassRefresh, i.refreshKey, i.method, i.refreshTTL, clientID, userID)
	if err != nil {
		return nil, err
	}

	return &Pair{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExpiresAt,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}

func (i *Issuer) VerifyAccess(tokenString string) (*Claims, error) {
	return Verify(tokenString, i.accessKey, i.method)
}

func (i *Issuer) VerifyRefresh(tokenString string) (*Claims, error) {
	return Verify(tokenString, i.refreshKey, i.method)
}
