package jwtx

import (
	"crypto/ed25519"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// EdDSAVerifier verifies Ed25519-signed session tokens against the identity
// provider's public key.
type EdDSAVerifier struct {
	pub    ed25519.PublicKey
	issuer string
}

// NewVerifierEdDSA loads an Ed25519 public key from PEM bytes (PKIX format).
// issuer, when non-empty, is enforced against the iss claim.
func NewVerifierEdDSA(pemKey []byte, issuer string) (*EdDSAVerifier, error) {
	block, _ := pem.Decode(pemKey)
	if block == nil {
		return nil, errors.New("jwtx: invalid PEM for Ed25519 public key")
	}
	if block.Type != "PUBLIC KEY" {
		return nil, fmt.Errorf("jwtx: expected PUBLIC KEY, got %q", block.Type)
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("jwtx: parse public key: %w", err)
	}

	pub, ok := parsed.(ed25519.PublicKey)
	if !ok {
		return nil, errors.New("jwtx: key is not Ed25519")
	}

	return &EdDSAVerifier{pub: pub, issuer: issuer}, nil
}

// Verify parses and validates a token, returning its claims.
func (v *EdDSAVerifier) Verify(token string) (Claims, error) {
	var claims Claims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, ErrAlgMismatch
		}
		return v.pub, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrAlgMismatch):
			return Claims{}, ErrAlgMismatch
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		default:
			return Claims{}, ErrMalformed
		}
	}
	if !parsed.Valid {
		return Claims{}, ErrInvalidSig
	}

	if err := claims.ValidateIssuer(v.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateIdentity(); err != nil {
		return Claims{}, err
	}

	return claims, nil
}
