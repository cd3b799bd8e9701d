package models

import (
	"errors"
	"strings"
)

// User represents a registered customer. The phone number is the natural
// key: registration rejects duplicates and login looks users up by it.
type User struct {
	ID        string `bson:"id" json:"id"`
	Name      string `bson:"name" json:"name"`
	Phone     string `bson:"phone" json:"phone"`
	Password  string `bson:"password" json:"-"` // bcrypt hash, never serialized
	CreatedAt string `bson:"created_at" json:"created_at"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// UserResponse is what the auth endpoints return: the user without the hash.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Validate checks the registration policy before anything is written.
func (r *RegisterRequest) Validate() error {
	if len(strings.TrimSpace(r.Name)) < 2 {
		return errors.New("Name must be at least 2 characters long")
	}
	if len(r.Phone) < 9 {
		return errors.New("Invalid phone number")
	}
	if len(r.Password) < 6 {
		return errors.New("Password must be at least 6 characters long")
	}
	return nil
}
