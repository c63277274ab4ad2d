package repository

import (
	"time"

	"github.com/jhoicas/instock-api/internal/domain/entity"
)

// MovementFilter filtros opcionales para listar movimientos.
type MovementFilter struct {
	ProductID string     // vacío = todos los productos
	From      *time.Time // nil = sin límite inferior
	To        *time.Time // nil = sin límite superior
	Limit     int
	Offset    int
}

// MovementRepository define el puerto de persistencia para Movement.
// Solo Create y lecturas: los movimientos son inmutables por diseño del
// dominio y el puerto no ofrece update ni delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	ListByCompany(companyID string, filter MovementFilter) ([]*entity.Movement, error)
}
