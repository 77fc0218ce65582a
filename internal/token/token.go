// internal/token/token.go
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Kind selects which of the two token classes to issue or verify.
type Kind int

const (
	// KindAccess is the short-lived token presented on every data-access call.
	KindAccess Kind = iota
	// KindRefresh is the long-lived token exchangeable for a new token pair.
	KindRefresh
)

// Verification errors. Callers should surface both to clients as a
// generic "invalid or expired" rejection.
var (
	ErrTokenInvalid = errors.New("token is invalid")
	ErrTokenExpired = errors.New("token is expired")
)

// Claims carries the standard registered claims plus the user identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// Service issues and verifies HS256-signed access and refresh tokens.
// Each kind is signed with its own secret, so a compromised access
// secret cannot be used to forge refresh tokens and vice versa.
type Service struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewService creates a token Service. Both secrets are required; a
// missing secret is a startup-level configuration error.
func NewService(accessSecret, refreshSecret []byte, accessTTL, refreshTTL time.Duration) (*Service, error) {
	if len(accessSecret) == 0 || len(refreshSecret) == 0 {
		return nil, errors.New("token: access and refresh secrets must be configured")
	}
	return &Service{
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}, nil
}

// Issue signs a new token of the given kind carrying userID.
func (s *Service) Issue(userID string, kind Kind) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			// The jti makes every issued token unique even within the same
			// second, so rotation always produces a distinct refresh token.
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl(kind))),
		},
		UserID: userID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret(kind))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses tokenString against the secret of the given kind and
// returns the user ID it carries. It returns ErrTokenExpired for tokens
// past their expiry and ErrTokenInvalid for any other failure.
func (s *Service) Verify(tokenString string, kind Kind) (string, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret(kind), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !parsed.Valid || claims.UserID == "" {
		return "", ErrTokenInvalid
	}
	return claims.UserID, nil
}

func (s *Service) secret(kind Kind) []byte {
	if kind == KindRefresh {
		return s.refreshSecret
	}
	return s.accessSecret
}

func (s *Service) ttl(kind Kind) time.Duration {
	if kind == KindRefresh {
		return s.refreshTTL
	}
	return s.accessTTL
}
