package repository

import "github.com/jhoicas/instock-api/internal/domain/entity"

// AuditRepository define el puerto de persistencia para AuditLog (append-only).
type AuditRepository interface {
	Create(log *entity.AuditLog) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.AuditLog, error)
	ListByEntity(entityType, entityID string, limit int) ([]*entity.AuditLog, error)
}
