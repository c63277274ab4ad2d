package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados derivados del producto. Status nunca se asigna directamente:
// siempre lo calcula el evaluador de estado al persistir.
const (
	StatusOK         = "ok"
	StatusLowStock   = "low-stock"
	StatusNearExpiry = "near-expiry"
)

// Product representa un producto/lote del inventario de una empresa.
// Quantity solo cambia vía movimientos; InitialQuantity es la foto de la
// cantidad con la que se registró el lote y sirve de base para el umbral
// de stock bajo.
type Product struct {
	ID              string
	CompanyID       string
	CategoryID      string
	SupplierID      string // vacío si no tiene proveedor principal
	Name            string
	Quantity        int // nunca negativo
	InitialQuantity int // >= 1, cantidad inicial del lote
	Price           decimal.Decimal
	ExpirationDate  time.Time
	Status          string // ok, low-stock, near-expiry (derivado)
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
