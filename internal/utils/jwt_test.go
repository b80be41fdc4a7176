// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("sweet-shop", 123, time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.UserID != 123 {
		t.Errorf("expected UserID 123, got %d", token.UserID)
	}
	if time.Until(token.ExpiresAt) <= 0 {
		t.Error("expected ExpiresAt in the future")
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"negative duration", "iss", -time.Second, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			if !errors.Is(err, ErrInvalidTokenParams) {
				t.Errorf("expected ErrInvalidTokenParams, got %v", err)
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken("sweet-shop", 77, time.Hour, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, "key", "sweet-shop")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.UserID != 77 {
		t.Errorf("expected UserID 77, got %d", parsed.UserID)
	}
	if parsed.SignedString != issued.SignedString {
		t.Error("expected SignedString to be preserved")
	}
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, _ := GenerateJWTToken("sweet-shop", 1, time.Hour, "key")

	expiredClaims := jwt.RegisteredClaims{
		Issuer:    "sweet-shop",
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	expired, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte("key"))

	noSubject, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "sweet-shop",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("key"))

	badSubject, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "sweet-shop",
		Subject:   "abc",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("key"))

	noExpiry, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:  "sweet-shop",
		Subject: "1",
	}).SignedString([]byte("key"))

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other", "sweet-shop"},
		{"wrong issuer", valid.SignedString, "key", "someone-else"},
		{"expired", expired, "key", "sweet-shop"},
		{"no subject", noSubject, "key", "sweet-shop"},
		{"non-numeric subject", badSubject, "key", "sweet-shop"},
		{"no expiry", noExpiry, "key", "sweet-shop"},
		{"garbage", "not.a.token", "key", "sweet-shop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", false},
		{"bearer abc", "abc", false},
		{"  Bearer   abc  ", "abc", false},
		{"Basic abc", "", true},
		{"Bearer", "", true},
		{"", "", true},
		{"Bearer a b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAuthorizationHeader) {
					t.Errorf("expected ErrInvalidAuthorizationHeader, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestBearerHeader(t *testing.T) {
	if got := BearerHeader("abc"); got != "Bearer abc" {
		t.Errorf("expected 'Bearer abc', got %q", got)
	}
}
