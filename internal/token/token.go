package token

import (
	"errors"
	"fmt"
	"time"

	"yatube-api/internal/apperr"
	"yatube-api/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// Kind distinguishes the two token types carried in the token_type claim.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Claims is the decoded JWT payload: subject (the user's email), the
// token kind and the registered expiry.
type Claims struct {
	TokenType Kind `json:"token_type"`
	jwt.RegisteredClaims
}

// Service issues and verifies signed bearer tokens. The signing key and
// algorithm are fixed for the process lifetime; changing the key
// invalidates every outstanding token.
type Service struct {
	secret        []byte
	method        jwt.SigningMethod
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewService builds a token service from JWT configuration. It fails when
// the configured algorithm is not an HMAC method, so a misconfigured
// process never signs a single token.
func NewService(cfg config.JWTConfig) (*Service, error) {
	method := jwt.GetSigningMethod(cfg.Algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm: %s", cfg.Algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm: %s", cfg.Algorithm)
	}

	return &Service{
		secret:        []byte(cfg.SecretKey),
		method:        method,
		accessExpiry:  cfg.AccessExpiry,
		refreshExpiry: cfg.RefreshExpiry,
	}, nil
}

// Issue signs a token of the given kind for the subject. Access tokens
// are short-lived, refresh tokens long-lived.
func (s *Service) Issue(subject string, kind Kind) (string, error) {
	expiry := s.accessExpiry
	if kind == KindRefresh {
		expiry = s.refreshExpiry
	}

	claims := Claims{
		TokenType: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	return token.SignedString(s.secret)
}

// Decode verifies the signature and expiry of a token and returns its
// claims. Signature, malformed and any other parse failures surface as
// ErrInvalidSignature; a correctly signed token past its expiry surfaces
// as ErrExpired so callers can offer a refresh flow. A token at the exact
// expiry instant is still accepted.
func (s *Service) Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !parsed.Valid {
		return nil, apperr.ErrInvalidSignature
	}
	if expiredAt(claims, time.Now()) {
		return nil, apperr.ErrExpired
	}

	return claims, nil
}

// expiredAt reports whether the claims are past expiry at now. A token is
// expired only when its expiry is strictly before now; one presented at
// the exact expiry instant is still accepted. The library's own expiry
// check is strict the other way, so expiry is validated here instead.
func expiredAt(claims *Claims, now time.Time) bool {
	return claims.ExpiresAt != nil && claims.ExpiresAt.Before(now)
}

// RequireKind rejects claims whose declared kind does not match the
// operation's expected kind. A refresh token must never pass where an
// access token is required, and vice versa.
func (s *Service) RequireKind(claims *Claims, expected Kind) (*Claims, error) {
	if claims.TokenType != expected {
		return nil, apperr.ErrWrongTokenKind
	}
	return claims, nil
}
