package jwtx

import (
	"crypto/ed25519"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// EdDSASigner mints session tokens with an Ed25519 private key. In
// production the identity provider signs tokens; this signer exists for the
// test harness and local development tooling.
type EdDSASigner struct {
	key ed25519.PrivateKey
}

// NewSignerEdDSA loads an Ed25519 private key from PEM bytes (PKCS8 format).
func NewSignerEdDSA(pemKey []byte) (*EdDSASigner, error) {
	block, _ := pem.Decode(pemKey)
	if block == nil {
		return nil, errors.New("jwtx: invalid PEM for Ed25519 key")
	}
	if block.Type != "PRIVATE KEY" {
		return nil, fmt.Errorf("jwtx: expected PRIVATE KEY, got %q (Ed25519 requires PKCS8)", block.Type)
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("jwtx: parse private key: %w", err)
	}

	key, ok := parsed.(ed25519.PrivateKey)
	if !ok {
		return nil, errors.New("jwtx: key is not Ed25519")
	}

	return &EdDSASigner{key: key}, nil
}

// NewSignerFromKey wraps a raw Ed25519 private key, handy when the key was
// just generated in-process.
func NewSignerFromKey(key ed25519.PrivateKey) *EdDSASigner {
	return &EdDSASigner{key: key}
}

func (s *EdDSASigner) Sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	return token.SignedString(s.key)
}

// EncodePublicKeyPEM renders an Ed25519 public key as PKIX PEM, the format
// NewVerifierEdDSA consumes.
func EncodePublicKeyPEM(pub ed25519.PublicKey) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}), nil
}
