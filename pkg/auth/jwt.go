package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ayushbridge/ayushbridge/internal/config"
	"github.com/ayushbridge/ayushbridge/internal/domain"
)

var (
	// ErrTokenMalformed covers tokens that are not even structurally JWTs.
	ErrTokenMalformed = errors.New("token is malformed")
	// ErrTokenInvalid covers well-formed tokens that are expired, tampered
	// with, or signed with the wrong key or algorithm.
	ErrTokenInvalid = errors.New("token is invalid or expired")
)

type sessionClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"`
}

// JWTManager signs and verifies stateless session tokens. Validity is
// entirely determined by the HMAC signature and expiry at verification
// time; nothing is stored server-side.
type JWTManager struct {
	cfg config.JWTConfig
}

func NewJWTManager(cfg config.JWTConfig) *JWTManager {
	return &JWTManager{cfg: cfg}
}

// Sign issues a token for the identity with the configured TTL.
func (m *JWTManager) Sign(claims domain.Claims) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(m.cfg.TokenTTL)

	jwtClaims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.cfg.Issuer,
			Subject:   claims.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Username: claims.Username,
		Role:     string(claims.Role),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims)
	signed, err := token.SignedString([]byte(m.cfg.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// Verify recovers the session identity from a token. Malformed tokens and
// invalid-or-expired tokens are distinguished only for error reporting;
// both deny access.
func (m *JWTManager) Verify(tokenString string) (domain.Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&sessionClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(m.cfg.Secret), nil
		},
		jwt.WithIssuer(m.cfg.Issuer),
		jwt.WithExpirationRequired(),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return domain.Claims{}, ErrTokenMalformed
		}
		return domain.Claims{}, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return domain.Claims{}, ErrTokenInvalid
	}

	return domain.Claims{
		UserID:   claims.Subject,
		Username: claims.Username,
		Role:     domain.Role(claims.Role),
	}, nil
}
