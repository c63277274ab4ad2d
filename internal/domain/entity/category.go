package entity

import "time"

// Estados válidos para Category.
const (
	CategoryStatusActive   = "activa"
	CategoryStatusInactive = "inactiva"
)

// Category representa una categoría de productos (por empresa).
type Category struct {
	ID        string
	CompanyID string
	Name      string
	Status    string // activa, inactiva
	CreatedAt time.Time
	UpdatedAt time.Time
}
