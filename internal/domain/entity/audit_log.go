package entity

import (
	"encoding/json"
	"time"
)

// Acciones registradas en el log de auditoría.
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
	AuditActionLogin  = "login"
)

// AuditLog registra una acción sobre una entidad del sistema, con snapshot
// de valores anteriores/nuevos y el diff campo a campo ya calculado.
// Como los movimientos, es un registro append-only.
type AuditLog struct {
	ID         string
	CompanyID  string
	UserID     string
	Action     string // create, update, delete, login
	EntityType string // product, category, supplier, user, ...
	EntityID   string // vacío para acciones sin entidad (login)
	OldValues  json.RawMessage
	NewValues  json.RawMessage
	Changes    json.RawMessage // {"campo": {"old": ..., "new": ...}}
	CreatedAt  time.Time
}
