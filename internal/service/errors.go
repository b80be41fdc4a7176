// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every validation failure.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned by Login for an unknown username or
	// a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrInvalidSweetID is returned for a non-positive sweet ID.
	ErrInvalidSweetID = errors.New("invalid sweet ID")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
