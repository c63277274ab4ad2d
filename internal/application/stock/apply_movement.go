package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/instock-api/internal/domain"
	"github.com/jhoicas/instock-api/internal/domain/entity"
	"github.com/jhoicas/instock-api/internal/domain/repository"
	domainstock "github.com/jhoicas/instock-api/internal/domain/stock"
)

// ApplyMovementUseCase aplica movimientos de stock de forma transaccional:
// bloqueo de fila del producto (SELECT FOR UPDATE), ajuste de cantidad con
// piso en cero, recálculo de estado y registro del movimiento inmutable.
type ApplyMovementUseCase struct {
	txRunner TxRunner
}

// NewApplyMovementUseCase construye el caso de uso.
func NewApplyMovementUseCase(txRunner TxRunner) *ApplyMovementUseCase {
	return &ApplyMovementUseCase{txRunner: txRunner}
}

// MovementInput entrada para aplicar un movimiento de stock.
type MovementInput struct {
	CompanyID   string
	UserID      string
	ProductID   string
	SupplierID  string
	Type        string // entry, exit
	Quantity    int    // > 0
	Description string
	OccurredAt  *time.Time // nil = ahora
}

// ApplyMovement valida la entrada, abre una transacción, bloquea la fila del
// producto y aplica el cambio de cantidad:
//
//	entry: quantity += q
//	exit:  quantity = max(quantity - q, 0)
//
// La salida que excede el stock se recorta en cero sin error (política
// heredada del sistema original: el faltante se descarta en silencio).
// El estado del producto se recalcula sobre la cantidad resultante y el
// movimiento se persiste en la misma transacción. Devuelve el movimiento creado.
func (uc *ApplyMovementUseCase) ApplyMovement(ctx context.Context, input MovementInput) (*entity.Movement, error) {
	// Validar antes de tocar nada: nada se escribe si la entrada es inválida.
	if input.ProductID == "" || input.UserID == "" || input.CompanyID == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.Type != entity.MovementTypeEntry && input.Type != entity.MovementTypeExit {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	occurredAt := now
	if input.OccurredAt != nil {
		occurredAt = *input.OccurredAt
	}

	var created *entity.Movement
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		// Bloquea la fila del producto: dos movimientos concurrentes sobre el
		// mismo producto se serializan aquí.
		product, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.CompanyID != input.CompanyID {
			return domain.ErrForbidden
		}

		newQty := product.Quantity
		if input.Type == entity.MovementTypeEntry {
			newQty += input.Quantity
		} else {
			newQty -= input.Quantity
			if newQty < 0 {
				newQty = 0
			}
		}

		status := domainstock.EvaluateStatus(newQty, product.InitialQuantity, product.ExpirationDate, now)
		if err := productRepo.UpdateQuantityStatus(product.ID, newQty, status); err != nil {
			return err
		}

		mov := &entity.Movement{
			ID:          uuid.New().String(),
			CompanyID:   input.CompanyID,
			ProductID:   input.ProductID,
			UserID:      input.UserID,
			SupplierID:  input.SupplierID,
			Type:        input.Type,
			Quantity:    input.Quantity,
			Description: input.Description,
			Date:        occurredAt,
			CreatedAt:   now,
		}
		if err := movementRepo.Create(mov); err != nil {
			return err
		}
		created = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
