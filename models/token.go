// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Token is an issued or parsed JWT.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be sent in the Authorization header.
// UserID is the parsed "sub" claim.
type Token struct {
	SignedString string    `json:"-"`
	UserID       int64     `json:"-"`
	ExpiresAt    time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
