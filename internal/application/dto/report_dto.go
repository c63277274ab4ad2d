package dto

import "github.com/shopspring/decimal"

// MovementReportRequest query params para GET /api/reports/movements.
type MovementReportRequest struct {
	From string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// MovementStatsResponse totales de movimientos del período.
type MovementStatsResponse struct {
	TotalEntries   int `json:"total_entries"`
	TotalExits     int `json:"total_exits"`
	TotalMovements int `json:"total_movements"`
}

// StockSummaryResponse foto del inventario por estado + valor total.
type StockSummaryResponse struct {
	TotalProducts   int             `json:"total_products"`
	OKCount         int             `json:"ok_count"`
	LowStockCount   int             `json:"low_stock_count"`
	NearExpiryCount int             `json:"near_expiry_count"`
	InventoryValue  decimal.Decimal `json:"inventory_value"`
}
