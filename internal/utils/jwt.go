// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

var (
	ErrInvalidTokenParams   = errors.New("invalid params for generating JWT Token")
	ErrEmptySubject         = errors.New("empty subject error")
	ErrInvalidAuthorization = errors.New("invalid authorization header")
)

// GenerateJWTToken signs an HMAC-SHA256 token for the local control API.
// The subject is the device id of the running instance.
//
//	token, err := utils.GenerateJWTToken("bookmark-sync", deviceID, time.Hour, "secret")
func GenerateJWTToken(issuer, deviceID string, tokenDuration time.Duration, signKey string) (models.ControlToken, error) {
	if issuer == "" || deviceID == "" || tokenDuration == 0 || signKey == "" {
		return models.ControlToken{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   deviceID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.ControlToken{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.ControlToken{Token: token, SignedString: tokenString, Subject: deviceID}, nil
}

// ValidateAndParseJWTToken verifies signature, issuer and expiry and returns
// the token with its subject.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.ControlToken, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.ControlToken{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return models.ControlToken{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if subject == "" {
		return models.ControlToken{}, ErrEmptySubject
	}

	return models.ControlToken{Token: token, SignedString: tokenString, Subject: subject}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrInvalidAuthorization
	}
	return strings.TrimSpace(token), nil
}
