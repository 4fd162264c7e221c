// Package token encodes and verifies the signed token payloads carried
// in the auth cookies. Access and refresh tokens share a payload shape
// but are signed with disjoint symmetric keys, so one class can never
// be replayed as the other.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Class is the token class recorded in the "type" claim.
type Class string

const (
	ClassAccess  Class = "access_token"
	ClassRefresh Class = "refresh_token"
)

// ErrInvalidToken covers every verification failure: bad signature,
// wrong algorithm, malformed token, expired token. Callers must not be
// able to tell these apart.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the wire format of a token payload.
type Claims struct {
	ClientID string `json:"client_id"`
	UserID   string `json:"user_id"`
	Type     Class  `json:"type"`
	jwt.RegisteredClaims
}

// Method resolves a configured algorithm name to a signing method.
// Only HMAC methods are accepted; anything else is a configuration
// error that must stop the process at startup.
func Method(algorithm string) (jwt.SigningMethod, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not an HMAC method", algorithm)
	}
	return method, nil
}

// Issue mints a signed token of the given class for a (client, user)
// pair, valid from now until now+ttl.
func Issue(class Class, key []byte, method jwt.SigningMethod, ttl time.Duration, clientID, userID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := Claims{
		ClientID: clientID,
		UserID:   userID,
		Type:     class,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// Verify checks the signature and expiry of a token and returns its
// claims. Every failure mode collapses to ErrInvalidToken.
func Verify(tokenString string, key []byte, method jwt.SigningMethod) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(t *jwt.Token) (interface{}, error) {
			return key, nil
		},
		jwt.WithValidMethods([]string{method.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
