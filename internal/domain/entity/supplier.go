package entity

import "time"

// Supplier representa un proveedor de la empresa.
type Supplier struct {
	ID        string
	CompanyID string
	Name      string
	Email     string
	Phone     string
	Address   string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
