package dto

import "time"

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	CompanyID string `json:"company_id" validate:"required,uuid4"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Name      string `json:"name,omitempty" validate:"omitempty,max=150"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Role      string `json:"role,omitempty" validate:"omitempty,oneof=admin gerente operador"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest body para PUT /api/users/:id (solo admin).
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=150"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=admin gerente operador"`
	Status   *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive suspended"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8"`
}

// UserResponse representación de un usuario (sin hash de password).
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token JWT + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserListResponse listado paginado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
