// Package storage issues time-limited access URLs for stored proof files.
// The file gateway serving the bytes verifies the token with Verify.
package storage

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by Verify for any unusable token.
var ErrInvalidToken = errors.New("invalid access token")

// Signer produces HS256-signed proof access URLs.
type Signer struct {
	base   *url.URL
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type accessClaims struct {
	jwt.RegisteredClaims
	Bucket string `json:"bucket"`
}

// NewSigner creates a signer for URLs rooted at baseURL.
func NewSigner(baseURL, secret string, ttl time.Duration) (*Signer, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse proof base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("proof base URL must be http(s), got %q", baseURL)
	}
	if secret == "" {
		return nil, errors.New("signing secret is empty")
	}
	if ttl <= 0 {
		return nil, errors.New("url ttl must be positive")
	}
	return &Signer{base: base, secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// TTL returns the validity of issued URLs.
func (s *Signer) TTL() time.Duration { return s.ttl }

// SignURL returns an access URL for the object and its expiry.
func (s *Signer) SignURL(bucket, path string) (string, time.Time, error) {
	path = strings.TrimLeft(path, "/")
	if bucket == "" || path == "" {
		return "", time.Time{}, errors.New("bucket and path are required")
	}

	now := s.now()
	expires := now.Add(s.ttl)
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   path,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		Bucket: bucket,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign access token: %w", err)
	}

	u := *s.base
	u.Path = u.Path + "/" + bucket + "/" + path
	u.RawPath = ""
	u.RawQuery = url.Values{"token": {token}}.Encode()
	return u.String(), expires, nil
}

// Verify checks a token and returns the bucket and path it grants.
func (s *Signer) Verify(token string) (bucket, path string, err error) {
	parsed, err := jwt.ParseWithClaims(token, &accessClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*accessClaims)
	if !ok || !parsed.Valid || claims.Bucket == "" || claims.Subject == "" {
		return "", "", ErrInvalidToken
	}
	return claims.Bucket, claims.Subject, nil
}
