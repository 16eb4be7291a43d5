package jwtx

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the session-token claims the workspace service consumes. The
// identity provider mints these; we only ever verify. Additive changes only,
// to stay compatible with tokens already in flight.
type Claims struct {
	jwt.RegisteredClaims

	// Email is the user's verified email address. Invitation matching is
	// keyed on this claim, compared case-insensitively.
	Email string `json:"email,omitempty"`

	// Name is the user's display name.
	Name string `json:"name,omitempty"`
}

// NewSessionClaims builds minimally-correct claims, used by the identity
// provider stub in tests and by local dev tooling.
func NewSessionClaims(
	subject, email, name string,
	issuer string,
	ttl time.Duration,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: strings.ToLower(email),
		Name:  name,
	}
}

// ValidateIssuer checks if the issuer matches the expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used
// before it is valid (nbf).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}

// ValidateIdentity ensures the claims carry the fields the service needs to
// resolve a caller: a subject and a verified email.
func (c *Claims) ValidateIdentity() error {
	if c.Subject == "" || c.Email == "" {
		return ErrInvalidClaim
	}
	return nil
}
