// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a shop account used for authentication.
type User struct {
	// UserID is the unique identifier assigned by the database.
	UserID int64 `json:"id"`

	// Username is the unique login of the account.
	Username string `json:"username"`

	// Email is an optional contact address.
	Email string `json:"email,omitempty"`

	// PasswordHash is the bcrypt hash of the account password.
	// It never leaves the server.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the payload accepted by the register and login endpoints.
// Password is plain text and is hashed before anything is persisted.
type Credentials struct {
	Username string `json:"username" mapstructure:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email,omitempty" mapstructure:"email" validate:"omitempty,email,max=255"`
	Password string `json:"password" mapstructure:"password" validate:"required,min=6,max=72"`
}

// AuthResponse is returned after a successful register or login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
