package models

import (
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the JWT claim set of an access token. The registered "jti"
// claim identifies the persisted token row, so a token can be revoked before
// it expires.
type TokenClaims struct {
	jwt.RegisteredClaims

	Abilities []Ability `json:"abilities"`
}

// Token is an issued access token.
//
// ID equals the "jti" claim and the primary key of the persisted token row.
// SignedString is the compact JWS form handed to the client and is never
// stored.
type Token struct {
	ID        string
	UserID    int64
	Name      string
	Abilities []Ability
	ExpiresAt time.Time
	CreatedAt time.Time

	SignedString string
}

// Can reports whether the token carries ability.
func (t Token) Can(ability Ability) bool {
	return slices.Contains(t.Abilities, ability)
}

// IsExpired reports whether the token is no longer valid at now.
func (t Token) IsExpired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && !now.Before(t.ExpiresAt)
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
