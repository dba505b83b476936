package auth

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the cookie token payload. The JWT ID carries the
// server-side session record identifier.
type SessionClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// SessionTokenPayload is the decoded result handed to callers after
// parsing and validating a session token.
type SessionTokenPayload struct {
	UserID   string
	Username string
	IsAdmin  bool
	SID      string
}
