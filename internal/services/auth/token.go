// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package auth

import (
	"errors"
	"time"

	"github.com/arlott/portfolio-api/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails verification,
// regardless of the reason.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the signed claim set carried by a bearer token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies bearer tokens with an HMAC-SHA256 secret.
// The only guarantee a verified token gives is integrity: the claims were
// produced by a holder of the secret. Expiry is a policy decision; with a
// zero TTL no exp claim is issued and tokens live until the secret rotates.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec builds a codec from the auth configuration.
func NewTokenCodec(cfg *config.AuthConfig) *TokenCodec {
	return &TokenCodec{
		secret: []byte(cfg.TokenSecret),
		ttl:    time.Duration(cfg.TokenTTL) * time.Hour,
	}
}

// Sign issues a token for the given subject and role.
func (tc *TokenCodec) Sign(subject, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  subject,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if tc.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(tc.ttl))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tc.secret)
}

// Verify decodes a token and checks its signature. Any tampered, truncated
// or otherwise malformed token yields ErrInvalidToken.
func (tc *TokenCodec) Verify(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (any, error) {
		return tc.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
