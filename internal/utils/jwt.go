// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-sweet-shop/models"
	"github.com/golang-jwt/jwt/v5"
)

// BearerScheme is the authorization scheme used for issued tokens.
const BearerScheme = "Bearer"

var (
	// ErrInvalidTokenParams is returned when GenerateJWTToken is called with
	// an empty issuer, key or a non-positive duration.
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")

	// ErrInvalidAuthorizationHeader is returned by ParseBearerToken for a
	// header that is not "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	expiresAt := now.Add(tokenDuration)
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, UserID: userID, ExpiresAt: expiresAt}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation covers the HS256 signature, the issuer, the expiration and the
// presence of a numeric subject.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during parsing JWT token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("token has no subject")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to user ID: %w", err)
	}

	return models.Token{
		SignedString: tokenString,
		UserID:       userID,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], BearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

// BearerHeader formats a token as an Authorization header value.
func BearerHeader(token string) string {
	return BearerScheme + " " + token
}
