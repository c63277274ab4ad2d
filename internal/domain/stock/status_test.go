package stock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/instock-api/internal/domain/entity"
	"github.com/jhoicas/instock-api/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del evaluador de estado: reglas, prioridad y bordes.
// El evaluador es puro, así que basta con vectores (cantidad, inicial, días).
// ──────────────────────────────────────────────────────────────────────────────

var today = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

// expiresIn devuelve una fecha de vencimiento a N días de today.
func expiresIn(days int) time.Time {
	return today.AddDate(0, 0, days)
}

func TestEvaluateStatus_StockSanoYLejosDelVencimiento(t *testing.T) {
	got := stock.EvaluateStatus(10, 20, expiresIn(400), today)
	assert.Equal(t, entity.StatusOK, got, "mitad exacta del lote y vencimiento lejano debe ser ok")
}

func TestEvaluateStatus_DebajoDeLaMitad(t *testing.T) {
	got := stock.EvaluateStatus(9, 20, expiresIn(400), today)
	assert.Equal(t, entity.StatusLowStock, got)
}

// La comparación es con división real: con lote impar 2 < 5/2 (2.5) es stock bajo.
func TestEvaluateStatus_MitadConLoteImpar(t *testing.T) {
	assert.Equal(t, entity.StatusLowStock, stock.EvaluateStatus(2, 5, expiresIn(400), today))
	assert.Equal(t, entity.StatusOK, stock.EvaluateStatus(3, 5, expiresIn(400), today))
}

func TestEvaluateStatus_VencimientoProximo(t *testing.T) {
	for days := 0; days < 7; days++ {
		got := stock.EvaluateStatus(100, 100, expiresIn(days), today)
		assert.Equal(t, entity.StatusNearExpiry, got, "a %d días debe ser near-expiry", days)
	}
}

func TestEvaluateStatus_SieteDiasYaNoEsProximo(t *testing.T) {
	got := stock.EvaluateStatus(100, 100, expiresIn(7), today)
	assert.Equal(t, entity.StatusOK, got, "el umbral es estricto: 7 días ya no es near-expiry")
}

// Prioridad determinista: si aplican vencimiento próximo y stock bajo a la vez,
// gana el vencimiento (regla 1 primero).
func TestEvaluateStatus_VencimientoGanaSobreStockBajo(t *testing.T) {
	got := stock.EvaluateStatus(5, 10, expiresIn(3), today)
	assert.Equal(t, entity.StatusNearExpiry, got)
}

// Producto ya vencido: días negativos no cumplen la regla 1 y caen a las
// reglas 2/3. Con 5/10 la regla 2 tampoco aplica (5 < 5 es falso) y el
// resultado es ok. Es el comportamiento heredado del sistema original;
// este test fija ese comportamiento, no uno "corregido".
func TestEvaluateStatus_VencidoCaeAReglasDeStock(t *testing.T) {
	got := stock.EvaluateStatus(5, 10, expiresIn(-2), today)
	assert.Equal(t, entity.StatusOK, got)

	got = stock.EvaluateStatus(4, 10, expiresIn(-2), today)
	assert.Equal(t, entity.StatusLowStock, got, "vencido con stock bajo sí reporta low-stock")
}

func TestEvaluateStatus_CantidadCeroEsStockBajo(t *testing.T) {
	got := stock.EvaluateStatus(0, 20, expiresIn(400), today)
	assert.Equal(t, entity.StatusLowStock, got)
}

// Idempotencia: mismos inputs, mismo estado, siempre.
func TestEvaluateStatus_Determinista(t *testing.T) {
	first := stock.EvaluateStatus(7, 20, expiresIn(30), today)
	second := stock.EvaluateStatus(7, 20, expiresIn(30), today)
	assert.Equal(t, first, second)
}

// La hora del día no altera el conteo de días calendario.
func TestDaysToExpiry_IgnoraHoraDelDia(t *testing.T) {
	expiration := time.Date(2026, 3, 13, 1, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 3, stock.DaysToExpiry(expiration, now))
}

func TestDaysToExpiry_Negativo(t *testing.T) {
	assert.Equal(t, -2, stock.DaysToExpiry(expiresIn(-2), today))
}
