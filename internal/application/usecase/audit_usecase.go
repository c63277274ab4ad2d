package usecase

import (
	"github.com/jhoicas/instock-api/internal/application/dto"
	"github.com/jhoicas/instock-api/internal/domain/entity"
	"github.com/jhoicas/instock-api/internal/domain/repository"
)

// AuditUseCase lecturas del log de auditoría (append-only, sin escritura
// directa: las entradas las genera el Recorder de aplicación).
type AuditUseCase struct {
	repo repository.AuditRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(repo repository.AuditRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo}
}

// List lista el log de auditoría de la empresa, más reciente primero.
func (uc *AuditUseCase) List(companyID string, limit, offset int) (*dto.AuditListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AuditLogResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAuditLogResponse(a))
	}
	return &dto.AuditListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListByEntity historial de auditoría de una entidad puntual.
func (uc *AuditUseCase) ListByEntity(entityType, entityID string, limit int) ([]dto.AuditLogResponse, error) {
	list, err := uc.repo.ListByEntity(entityType, entityID, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AuditLogResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAuditLogResponse(a))
	}
	return items, nil
}

func toAuditLogResponse(a *entity.AuditLog) *dto.AuditLogResponse {
	if a == nil {
		return nil
	}
	return &dto.AuditLogResponse{
		ID:         a.ID,
		CompanyID:  a.CompanyID,
		UserID:     a.UserID,
		Action:     a.Action,
		EntityType: a.EntityType,
		EntityID:   a.EntityID,
		OldValues:  a.OldValues,
		NewValues:  a.NewValues,
		Changes:    a.Changes,
		CreatedAt:  a.CreatedAt,
	}
}
