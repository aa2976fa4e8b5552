// Package utils provides helper functions for session token creation and
// verification.
package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionToken represents a signed JWT bound to one live session. The
// Token field contains the serialized JWT; JTI is the token id under
// which the session is tracked in Redis. A token is only honored while
// its jti key is alive, so logout and expiry both kill it regardless of
// the exp claim.
type SessionToken struct {
	Token string    // the serialized JWT string
	JTI   string    // unique token id, also the Redis session key suffix
	Exp   time.Time // the UTC expiration time
}

// ErrInvalidToken is returned for tokens that fail signature or claim
// validation, or that lack the claims a session token must carry.
var ErrInvalidToken = errors.New("invalid session token")

// NewSessionToken builds and signs an HS256 JWT for an account. The JWT
// includes subject (sub, the account identifier), a fresh token id (jti),
// expiration (exp) and issued at (iat).
func NewSessionToken(secret, identifier string, ttlMin int) (SessionToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	jti := uuid.NewString()
	claims := jwt.MapClaims{
		"sub": identifier,
		"jti": jti,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, JTI: jti, Exp: exp}, nil
}

// ParseSessionToken verifies an HS256 JWT and extracts the token id and
// account identifier. Signature, algorithm and expiry are all enforced;
// anything short of a fully valid token yields ErrInvalidToken.
func ParseSessionToken(secret, raw string) (jti, identifier string, err error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return "", "", ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", ErrInvalidToken
	}
	jti, _ = claims["jti"].(string)
	identifier, _ = claims["sub"].(string)
	if jti == "" || identifier == "" {
		return "", "", ErrInvalidToken
	}
	return jti, identifier, nil
}
