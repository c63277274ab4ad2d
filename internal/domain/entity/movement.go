package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeEntry = "entry" // entrada: suma cantidad
	MovementTypeExit  = "exit"  // salida: resta cantidad (con piso en cero)
)

// Movement representa un movimiento de stock contra un producto.
// Es un hecho histórico inmutable: una vez creado no existe operación
// de actualización ni de borrado en todo el sistema.
type Movement struct {
	ID          string
	CompanyID   string
	ProductID   string
	UserID      string // usuario que registró el movimiento
	SupplierID  string // vacío si no aplica (típico en salidas)
	Type        string // entry, exit
	Quantity    int    // siempre > 0; el tipo indica el signo
	Description string
	Date        time.Time // fecha del hecho; puede retro-datarse al registrar
	CreatedAt   time.Time // siempre asignada por el servidor
}
