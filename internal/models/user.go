package models

import "time"

type Role string

const (
	RoleManager Role = "property_manager"
	RoleTenant  Role = "tenant"
	RoleOwner   Role = "property_owner"
)

func (r Role) Valid() bool {
	switch r {
	case RoleManager, RoleTenant, RoleOwner:
		return true
	}
	return false
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	Phone        *string   `json:"phone"`
	Avatar       *string   `json:"avatar"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterRequest represents the request body for registration
type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Name     string  `json:"name" validate:"required,min=2"`
	Role     Role    `json:"role" validate:"required,oneof=property_manager tenant property_owner"`
	Phone    *string `json:"phone,omitempty"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
