// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidInput is matched by every field-level validation failure.
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidPriceRange = errors.New("min_price must not exceed max_price")
)
