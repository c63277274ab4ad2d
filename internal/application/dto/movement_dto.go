package dto

import "time"

// RegisterMovementRequest body para POST /api/stock/movements.
// OccurredAt permite retro-datar el hecho; si falta, lo asigna el servidor.
type RegisterMovementRequest struct {
	ProductID   string     `json:"product_id" validate:"required,uuid4"`
	SupplierID  string     `json:"supplier_id,omitempty" validate:"omitempty,uuid4"`
	Type        string     `json:"type" validate:"required,oneof=entry exit"`
	Quantity    int        `json:"quantity" validate:"required,min=1"`
	Description string     `json:"description,omitempty"`
	OccurredAt  *time.Time `json:"occurred_at,omitempty"`
}

// MovementResponse representación de un movimiento en respuestas.
type MovementResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	ProductID   string    `json:"product_id"`
	UserID      string    `json:"user_id"`
	SupplierID  string    `json:"supplier_id,omitempty"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListMovementsRequest query params para GET /api/stock/movements.
type ListMovementsRequest struct {
	PageRequest
	ProductID string `query:"product_id" validate:"omitempty,uuid4"`
	From      string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To        string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// MovementListResponse listado paginado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
