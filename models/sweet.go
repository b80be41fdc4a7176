// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Sweet is a product sold by the shop.
type Sweet struct {
	// ID is the unique identifier assigned by the database.
	ID int64 `json:"id" mapstructure:"id"`

	// Name is the display name of the product.
	Name string `json:"name" mapstructure:"name" validate:"required,max=255"`

	// Category groups products (e.g. "chocolate", "candy").
	Category string `json:"category" mapstructure:"category" validate:"required,max=100"`

	// Price is the unit price. Never negative.
	Price float64 `json:"price" mapstructure:"price" validate:"gte=0"`

	// Quantity is the number of units in stock. Never negative.
	Quantity int64 `json:"quantity" mapstructure:"quantity" validate:"gte=0"`

	CreatedAt time.Time `json:"created_at" mapstructure:"-"`
	UpdatedAt time.Time `json:"updated_at" mapstructure:"-"`
}

// TableName returns the name of the database table
// associated with the Sweet model.
func (s Sweet) TableName() string {
	return "sweets"
}

// SweetFilter narrows the list of sweets. Zero values mean "no filter".
type SweetFilter struct {
	// Name matches sweets whose name contains the value, case-insensitively.
	Name string `json:"name,omitempty"`

	// Category matches sweets of exactly this category.
	Category string `json:"category,omitempty"`

	// MinPrice and MaxPrice bound the price, inclusive.
	MinPrice *float64 `json:"min_price,omitempty" validate:"omitempty,gte=0"`
	MaxPrice *float64 `json:"max_price,omitempty" validate:"omitempty,gte=0"`
}
