package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/instock-api/internal/application/dto"
	"github.com/jhoicas/instock-api/internal/application/usecase"
	"github.com/jhoicas/instock-api/pkg/validate"
)

// ReportHandler reportes agregados de inventario y movimientos (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// MovementStats godoc
// @Summary      Totales de movimientos por período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Fecha desde (YYYY-MM-DD)"
// @Param        to    query  string  false  "Fecha hasta (YYYY-MM-DD)"
// @Success      200  {object}  dto.MovementStatsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/movements [get]
func (h *ReportHandler) MovementStats(c *fiber.Ctx) error {
	var in dto.MovementReportRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"code": "VALIDATION", "errors": validate.Messages(err)})
	}
	out, err := h.uc.MovementStats(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// StockSummary godoc
// @Summary      Resumen del inventario
// @Description  Conteo de productos por estado y valor total del inventario.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockSummaryResponse
// @Router       /api/reports/stock [get]
func (h *ReportHandler) StockSummary(c *fiber.Ctx) error {
	out, err := h.uc.StockSummary(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
