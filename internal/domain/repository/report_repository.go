package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MovementStats totales de movimientos de un período.
type MovementStats struct {
	TotalEntries   int
	TotalExits     int
	TotalMovements int
}

// StockSummary foto del inventario de la empresa: conteo por estado y
// valor total (SUM(quantity * price)).
type StockSummary struct {
	TotalProducts   int
	OKCount         int
	LowStockCount   int
	NearExpiryCount int
	InventoryValue  decimal.Decimal
}

// ReportRepository consultas de agregación de solo lectura para reportes.
type ReportRepository interface {
	GetMovementStats(ctx context.Context, companyID string, from, to *time.Time) (*MovementStats, error)
	GetStockSummary(ctx context.Context, companyID string) (*StockSummary, error)
}
