package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/pulse-auth/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenSigningMethod is the only algorithm tokens are signed and accepted with.
var tokenSigningMethod = jwt.SigningMethodHS256

// GenerateJWTToken creates a signed HS256 JWT for the given subject.
//
// The token includes the following claims:
//   - Subject   (sub): the username
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - Issuer    (iss): only when issuer is non-empty
//
// Returns ErrInvalidTokenParams if subject or signKey are empty or
// tokenDuration is zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("pulse", "alice", 30*time.Minute, "secret")
func GenerateJWTToken(issuer, subject string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if subject == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(tokenSigningMethod, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: claims,
		SignedString:     tokenString,
		Username:         subject,
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT string and extracts its
// subject.
//
// Validation includes:
//   - the header algorithm must be exactly HS256 (no algorithm confusion)
//   - signature verification with tokenSignKey
//   - presence and validity of the expiration (exp) claim
//   - issuer (iss) check when tokenIssuer is non-empty
//
// Any of the above failing yields an error wrapping ErrInvalidToken. A valid
// token without a subject yields ErrMissingSubject.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{tokenSigningMethod.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if tokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(tokenIssuer))
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return models.Token{}, ErrMissingSubject
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: *claims,
		SignedString:     tokenString,
		Username:         claims.Subject,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
