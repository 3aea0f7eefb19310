package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-shipment-tracker/models"
	"github.com/golang-jwt/jwt/v5"
)

// TokenParams describes an access token to be signed by GenerateJWTToken.
type TokenParams struct {
	Issuer    string
	SignKey   string
	TokenID   string
	UserID    int64
	Name      string
	Abilities []models.Ability
	IssuedAt  time.Time
	TTL       time.Duration
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for p.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - ID        (jti): the persisted token identifier
//   - IssuedAt  (iat): p.IssuedAt
//   - ExpiresAt (exp): p.IssuedAt plus p.TTL
//   - abilities:       the capability tags granted to the token
//
// Issuer, SignKey, TokenID and a positive TTL are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(utils.TokenParams{
//	    Issuer: "shipment-tracker", SignKey: "secret", TokenID: id,
//	    UserID: 42, Abilities: []models.Ability{models.AbilityUserAccess},
//	    IssuedAt: time.Now(), TTL: time.Hour,
//	})
func GenerateJWTToken(p TokenParams) (models.Token, error) {
	if p.Issuer == "" || p.TTL <= 0 || p.SignKey == "" || p.TokenID == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	if p.IssuedAt.IsZero() {
		p.IssuedAt = time.Now()
	}
	expiresAt := p.IssuedAt.Add(p.TTL)

	claims := &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        p.TokenID,
			Issuer:    p.Issuer,
			Subject:   strconv.FormatInt(p.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(p.IssuedAt),
		},
		Abilities: p.Abilities,
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(p.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		ID:           p.TokenID,
		UserID:       p.UserID,
		Name:         p.Name,
		Abilities:    p.Abilities,
		ExpiresAt:    expiresAt,
		CreatedAt:    p.IssuedAt,
		SignedString: tokenString,
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim presence and check
//   - Subject (sub) and ID (jti) claim presence
//
// The returned token does not prove that the token was not revoked; callers
// must look up its ID in the token store.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}
	if claims.ID == "" {
		return models.Token{}, errors.New("empty token id error")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to user id: %w", err)
	}

	token := models.Token{
		ID:           claims.ID,
		UserID:       userID,
		Abilities:    claims.Abilities,
		ExpiresAt:    claims.ExpiresAt.Time,
		SignedString: tokenString,
	}
	if claims.IssuedAt != nil {
		token.CreatedAt = claims.IssuedAt.Time
	}

	return token, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
