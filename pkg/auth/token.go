package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/techstore/storefront-backend/pkg/config"
)

// MintSessionToken signs a session token bound to the given session ID.
func MintSessionToken(cfg config.SessionConfig, userID, username string, isAdmin bool, sid string) (string, error) {
	if cfg.Secret == "" {
		return "", fmt.Errorf("session secret is not configured")
	}
	if sid == "" {
		return "", fmt.Errorf("session id is required")
	}

	now := time.Now()
	claims := SessionClaims{
		UserID:   userID,
		Username: username,
		IsAdmin:  isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   userID,
			ID:        sid,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL())),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}

	return signed, nil
}

// ParseSessionToken validates the signature, issuer and expiry and
// returns the decoded payload.
func ParseSessionToken(cfg config.SessionConfig, tokenString string) (*SessionTokenPayload, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (any, error) {
			return []byte(cfg.Secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
	)
	if err != nil {
		return nil, fmt.Errorf("parsing session token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("session token is invalid")
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("session token has no session id")
	}

	return &SessionTokenPayload{
		UserID:   claims.UserID,
		Username: claims.Username,
		IsAdmin:  claims.IsAdmin,
		SID:      claims.ID,
	}, nil
}
