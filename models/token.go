package models

import "time"

// TokenPair is the credential set held by a session.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
}

// TokenClaims is the subset of access token claims the client inspects.
// The client never verifies signatures; it only reads who the token is for
// and when it expires.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// Expired reports whether the claims carry an expiry that lies before now.
func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}
