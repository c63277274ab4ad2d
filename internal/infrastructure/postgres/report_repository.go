package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/instock-api/internal/domain/entity"
	"github.com/jhoicas/instock-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de agregación para reportes. Solo lectura: la base
// hace el trabajo pesado y acá solo se escanean los totales.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// GetMovementStats totales de entradas/salidas de la empresa en un rango de fechas.
func (r *ReportRepo) GetMovementStats(ctx context.Context, companyID string, from, to *time.Time) (*repository.MovementStats, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE type = $2),
			COUNT(*) FILTER (WHERE type = $3),
			COUNT(*)
		FROM movements
		WHERE company_id = $1
			AND ($4::timestamptz IS NULL OR date >= $4)
			AND ($5::timestamptz IS NULL OR date <= $5)`
	var stats repository.MovementStats
	err := r.q.QueryRow(ctx, query, companyID, entity.MovementTypeEntry, entity.MovementTypeExit, from, to).Scan(
		&stats.TotalEntries, &stats.TotalExits, &stats.TotalMovements,
	)
	if err != nil {
		return nil, fmt.Errorf("movement stats: %w", err)
	}
	return &stats, nil
}

// GetStockSummary foto del inventario de la empresa: conteo por estado y
// valor total SUM(quantity * price).
func (r *ReportRepo) GetStockSummary(ctx context.Context, companyID string) (*repository.StockSummary, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status = $3),
			COUNT(*) FILTER (WHERE status = $4),
			COALESCE(SUM(quantity * price), 0)
		FROM products
		WHERE company_id = $1`
	var s repository.StockSummary
	err := r.q.QueryRow(ctx, query, companyID,
		entity.StatusOK, entity.StatusLowStock, entity.StatusNearExpiry,
	).Scan(&s.TotalProducts, &s.OKCount, &s.LowStockCount, &s.NearExpiryCount, &s.InventoryValue)
	if err != nil {
		return nil, fmt.Errorf("stock summary: %w", err)
	}
	return &s, nil
}
