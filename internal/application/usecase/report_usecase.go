package usecase

import (
	"context"

	"github.com/jhoicas/instock-api/internal/application/dto"
	"github.com/jhoicas/instock-api/internal/domain"
	"github.com/jhoicas/instock-api/internal/domain/repository"
)

// ReportUseCase reportes de solo lectura sobre inventario y movimientos.
// La agregación corre en la base; acá solo se validan rangos y se mapea.
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// MovementStats totales de entradas/salidas de la empresa en un período.
func (uc *ReportUseCase) MovementStats(ctx context.Context, companyID string, in dto.MovementReportRequest) (*dto.MovementStatsResponse, error) {
	from, err := parseOptionalDate(in.From)
	if err != nil {
		return nil, err
	}
	to, err := parseOptionalDate(in.To)
	if err != nil {
		return nil, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, domain.ErrInvalidInput
	}

	stats, err := uc.repo.GetMovementStats(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.MovementStatsResponse{
		TotalEntries:   stats.TotalEntries,
		TotalExits:     stats.TotalExits,
		TotalMovements: stats.TotalMovements,
	}, nil
}

// StockSummary foto actual del inventario: conteo por estado y valor total.
func (uc *ReportUseCase) StockSummary(ctx context.Context, companyID string) (*dto.StockSummaryResponse, error) {
	summary, err := uc.repo.GetStockSummary(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return &dto.StockSummaryResponse{
		TotalProducts:   summary.TotalProducts,
		OKCount:         summary.OKCount,
		LowStockCount:   summary.LowStockCount,
		NearExpiryCount: summary.NearExpiryCount,
		InventoryValue:  summary.InventoryValue,
	}, nil
}
