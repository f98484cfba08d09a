package dto

import "time"

// RegisterRequest entrada para el registro público de usuarios.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Image    string `json:"img" validate:"omitempty,max=500"`
	Role     string `json:"role" validate:"omitempty,oneof=ADMIN_ROLE MANAGE_ROLE OWNER_ROLE USER_ROLE"`
}

// UpdateUserRequest campos modificables de un usuario. Role y Status solo los aplica un admin.
type UpdateUserRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Image  *string `json:"img" validate:"omitempty,max=500"`
	Role   *string `json:"role" validate:"omitempty,oneof=ADMIN_ROLE MANAGE_ROLE OWNER_ROLE USER_ROLE"`
	Status *bool   `json:"status"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Image     string    `json:"img"`
	Role      string    `json:"role"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
