package stock

import (
	"context"

	"github.com/jhoicas/instock-api/internal/application/dto"
	"github.com/jhoicas/instock-api/internal/domain/entity"
)

// ApplyMovementFromRequest adapta el request HTTP al caso de uso
// ApplyMovement(ctx, MovementInput). Usar desde handlers que ya tienen
// companyID y userID del token.
func (uc *ApplyMovementUseCase) ApplyMovementFromRequest(ctx context.Context, companyID, userID string, in dto.RegisterMovementRequest) (*entity.Movement, error) {
	input := MovementInput{
		CompanyID:   companyID,
		UserID:      userID,
		ProductID:   in.ProductID,
		SupplierID:  in.SupplierID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		Description: in.Description,
		OccurredAt:  in.OccurredAt,
	}
	return uc.ApplyMovement(ctx, input)
}
