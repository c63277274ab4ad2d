package usecase

import (
	"time"

	"github.com/jhoicas/instock-api/internal/application/dto"
	"github.com/jhoicas/instock-api/internal/domain"
	"github.com/jhoicas/instock-api/internal/domain/entity"
	"github.com/jhoicas/instock-api/internal/domain/repository"
)

// MovementUseCase lecturas del historial de movimientos. El registro de
// movimientos nuevos pasa por el caso de uso transaccional de stock.
type MovementUseCase struct {
	repo repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(repo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo}
}

// GetByID obtiene un movimiento (nil si no existe o es de otra empresa).
func (uc *MovementUseCase) GetByID(companyID, id string) (*dto.MovementResponse, error) {
	movement, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if movement == nil || movement.CompanyID != companyID {
		return nil, nil
	}
	return ToMovementResponse(movement), nil
}

// List lista el historial de la empresa, filtrable por producto y rango de
// fechas, ordenado por fecha descendente.
func (uc *MovementUseCase) List(companyID string, in dto.ListMovementsRequest) (*dto.MovementListResponse, error) {
	filter := repository.MovementFilter{
		ProductID: in.ProductID,
		Limit:     in.Limit,
		Offset:    in.Offset,
	}
	var err error
	if filter.From, err = parseOptionalDate(in.From); err != nil {
		return nil, err
	}
	if filter.To, err = parseOptionalDate(in.To); err != nil {
		return nil, err
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, domain.ErrInvalidInput
	}

	list, err := uc.repo.ListByCompany(companyID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *ToMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// ToMovementResponse mapea la entidad al DTO de respuesta.
func ToMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:          m.ID,
		CompanyID:   m.CompanyID,
		ProductID:   m.ProductID,
		UserID:      m.UserID,
		SupplierID:  m.SupplierID,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Description: m.Description,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
	}
}

// parseOptionalDate interpreta fechas YYYY-MM-DD opcionales de query params.
func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &t, nil
}
