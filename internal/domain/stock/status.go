package stock

import (
	"time"

	"github.com/jhoicas/instock-api/internal/domain/entity"
)

// Umbral de vencimiento próximo en días.
const nearExpiryDays = 7

// EvaluateStatus calcula el estado derivado de un producto (servicio de dominio, puro).
// Se evalúa en orden fijo de prioridad, gana la primera regla que aplique:
//
//  1. Si faltan entre 0 y 6 días para el vencimiento -> near-expiry.
//  2. Si la cantidad está por debajo de la mitad de la cantidad inicial del lote -> low-stock.
//  3. En otro caso -> ok.
//
// Un producto ya vencido (días < 0) NO cumple la regla 1 y cae a las reglas 2/3:
// comportamiento heredado del sistema original, cubierto por tests tal cual.
// Debe invocarse en todo camino de persistencia del producto; los llamadores
// nunca asignan Status a mano.
func EvaluateStatus(quantity, initialQuantity int, expirationDate, today time.Time) string {
	days := DaysToExpiry(expirationDate, today)
	if days >= 0 && days < nearExpiryDays {
		return entity.StatusNearExpiry
	}
	// quantity < initialQuantity/2 con división real: 2*q < i evita truncar
	// con cantidades impares (q=2, i=5 es stock bajo).
	if 2*quantity < initialQuantity {
		return entity.StatusLowStock
	}
	return entity.StatusOK
}

// DaysToExpiry devuelve los días calendario entre hoy y la fecha de vencimiento,
// ignorando la hora del día. Negativo si el producto ya venció.
func DaysToExpiry(expirationDate, today time.Time) int {
	e := time.Date(expirationDate.Year(), expirationDate.Month(), expirationDate.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(t).Hours() / 24)
}
