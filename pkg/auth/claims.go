package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// DemoTokenPayload captures the data available when minting a session token.
type DemoTokenPayload struct {
	UserID string
	Email  string
	Name   string
}

// DemoTokenClaims represents the typed JWT handed back on mock logins. The token
// exists so the demo UI has something realistic to display and decode; it is not
// a security boundary.
type DemoTokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}
