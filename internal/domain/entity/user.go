package entity

import "time"

// Roles válidos para User. Admin pasa todos los chequeos de rol.
const (
	RoleAdmin    = "admin"
	RoleGerente  = "gerente"
	RoleOperador = "operador"
)

// User representa un usuario del sistema (pertenece a una Company).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Phone        string
	Role         string // admin, gerente, operador
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
