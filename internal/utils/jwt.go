package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every way a token can fail verification: bad
// signature, wrong algorithm, structural garbage, missing subject or an
// expiry in the past. Callers get no finer distinction on purpose.
var ErrInvalidToken = errors.New("invalid token")

// TokenIssuer signs and verifies self-contained access tokens with a
// symmetric key. A token carries the subject (the user's email), an absolute
// expiry and an issued-at instant; nothing is stored server-side.
type TokenIssuer struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewTokenIssuer resolves the signing algorithm by name (e.g. "HS256") and
// returns an issuer with the given key and token lifetime. Only HMAC-family
// algorithms are accepted; the key is a shared secret, not a key pair.
func NewTokenIssuer(secret, algorithm string, ttl time.Duration) (*TokenIssuer, error) {
	m := jwt.GetSigningMethod(algorithm)
	if m == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := m.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not symmetric", algorithm)
	}
	return &TokenIssuer{secret: []byte(secret), method: m, ttl: ttl}, nil
}

// Issue signs a token for the subject, expiring ttl from now.
func (ti *TokenIssuer) Issue(subject string) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(ti.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	signed, err := jwt.NewWithClaims(ti.method, claims).SignedString(ti.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Verify parses and validates a token and returns its subject. Verification
// pins the configured algorithm, so a token claiming a different alg in its
// header is rejected outright. Expiry is strict with zero leeway.
func (ti *TokenIssuer) Verify(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (interface{}, error) { return ti.secret, nil },
		jwt.WithValidMethods([]string{ti.method.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tok.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
