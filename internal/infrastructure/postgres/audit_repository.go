package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/instock-api/internal/domain/entity"
	"github.com/jhoicas/instock-api/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

const auditColumns = `id, company_id, user_id, action, entity_type, COALESCE(entity_id, ''), old_values, new_values, changes, created_at`

// AuditRepo implementación de AuditRepository sobre PostgreSQL. La tabla es
// append-only: solo INSERT y lecturas.
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador del log de auditoría. Pasar pool o tx (Querier).
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Create persiste una entrada de auditoría. Los snapshots JSON van como jsonb.
func (r *AuditRepo) Create(log *entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, company_id, user_id, action, entity_type, entity_id, old_values, new_values, changes, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.CompanyID, log.UserID, log.Action, log.EntityType, log.EntityID,
		log.OldValues, log.NewValues, log.Changes, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// ListByCompany lista entradas de auditoría de la empresa, más recientes primero.
func (r *AuditRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.AuditLog, error) {
	query := `
		SELECT ` + auditColumns + `
		FROM audit_logs WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()
	return scanAuditLogs(rows)
}

// ListByEntity lista el historial de auditoría de una entidad puntual.
func (r *AuditRepo) ListByEntity(entityType, entityID string, limit int) ([]*entity.AuditLog, error) {
	query := `
		SELECT ` + auditColumns + `
		FROM audit_logs WHERE entity_type = $1 AND entity_id = $2 ORDER BY created_at DESC LIMIT $3`
	rows, err := r.q.Query(context.Background(), query, entityType, entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit logs by entity: %w", err)
	}
	defer rows.Close()
	return scanAuditLogs(rows)
}

func scanAuditLogs(rows pgx.Rows) ([]*entity.AuditLog, error) {
	var list []*entity.AuditLog
	for rows.Next() {
		var a entity.AuditLog
		if err := rows.Scan(&a.ID, &a.CompanyID, &a.UserID, &a.Action, &a.EntityType,
			&a.EntityID, &a.OldValues, &a.NewValues, &a.Changes, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
