package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// Quantity es la cantidad inicial del lote: queda como InitialQuantity y
// como Quantity de apertura (el movimiento de entrada inicial la registra).
type CreateProductRequest struct {
	Name           string          `json:"name" validate:"required,max=250"`
	CategoryID     string          `json:"category_id" validate:"required,uuid4"`
	SupplierID     string          `json:"supplier_id,omitempty" validate:"omitempty,uuid4"`
	Quantity       int             `json:"quantity" validate:"required,min=1"`
	Price          decimal.Decimal `json:"price" validate:"required"`
	ExpirationDate string          `json:"expiration_date" validate:"required,datetime=2006-01-02"`
}

// UpdateProductRequest body para PUT /api/products/:id. Campos opcionales.
// No admite Quantity ni Status: la cantidad solo cambia vía movimientos y
// el estado siempre se recalcula al guardar.
type UpdateProductRequest struct {
	Name           *string          `json:"name,omitempty" validate:"omitempty,max=250"`
	CategoryID     *string          `json:"category_id,omitempty" validate:"omitempty,uuid4"`
	SupplierID     *string          `json:"supplier_id,omitempty" validate:"omitempty,uuid4"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	ExpirationDate *string          `json:"expiration_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"company_id"`
	CategoryID      string          `json:"category_id"`
	SupplierID      string          `json:"supplier_id,omitempty"`
	Name            string          `json:"name"`
	Quantity        int             `json:"quantity"`
	InitialQuantity int             `json:"initial_quantity"`
	Price           decimal.Decimal `json:"price"`
	ExpirationDate  string          `json:"expiration_date"` // YYYY-MM-DD
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
