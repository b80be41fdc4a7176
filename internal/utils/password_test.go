// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"strings"
	"testing"
)

func TestHashPassword_CheckPassword(t *testing.T) {
	hash, err := HashPassword("sugar-rush")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "sugar-rush" {
		t.Fatal("expected hash to differ from the password")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected bcrypt hash, got %q", hash)
	}

	if err := CheckPassword(hash, "sugar-rush"); err != nil {
		t.Errorf("expected matching password, got: %v", err)
	}
	if err := CheckPassword(hash, "wrong"); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got: %v", err)
	}
}

func TestHashPassword_Salted(t *testing.T) {
	a, _ := HashPassword("same")
	b, _ := HashPassword("same")

	if a == b {
		t.Error("expected different hashes for the same password")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	err := CheckPassword("not-a-hash", "x")
	if err == nil {
		t.Fatal("expected error for malformed hash")
	}
	if errors.Is(err, ErrPasswordMismatch) {
		t.Error("malformed hash must not be reported as a mismatch")
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	if _, err := HashPassword(strings.Repeat("x", 73)); err == nil {
		t.Error("expected error for password longer than 72 bytes")
	}
}
