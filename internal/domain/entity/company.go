package entity

import "time"

// Company representa una organización/tenant del sistema. Todos los datos
// de productos, movimientos y usuarios quedan aislados por empresa.
type Company struct {
	ID        string
	Name      string
	TaxID     string // identificación tributaria (NIT/CNPJ según país)
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
