package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/instock-api/internal/domain/entity"
	"github.com/jhoicas/instock-api/internal/domain/repository"
	"github.com/jhoicas/instock-api/pkg/logger"
)

// Recorder registra acciones en el log de auditoría: serializa la entidad,
// calcula el diff campo a campo y persiste el registro append-only.
// Es best-effort: un fallo al escribir auditoría se loguea pero nunca hace
// fallar la operación de negocio que la originó.
type Recorder struct {
	repo repository.AuditRepository
	log  *logger.Logger
}

// NewRecorder construye el servicio de auditoría.
func NewRecorder(repo repository.AuditRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Change par anterior/nuevo de un campo modificado.
type Change struct {
	Old any `json:"old"`
	New any `json:"new"`
}

// RecordCreate registra la creación de una entidad con snapshot de sus valores.
func (r *Recorder) RecordCreate(companyID, userID, entityType, entityID string, newObj any) {
	r.record(companyID, userID, entity.AuditActionCreate, entityType, entityID, nil, Serialize(newObj), nil)
}

// RecordUpdate registra una actualización con valores anteriores, nuevos y el diff.
func (r *Recorder) RecordUpdate(companyID, userID, entityType, entityID string, oldObj, newObj any) {
	oldValues := Serialize(oldObj)
	newValues := Serialize(newObj)
	r.record(companyID, userID, entity.AuditActionUpdate, entityType, entityID,
		oldValues, newValues, ComputeChanges(oldValues, newValues))
}

// RecordDelete registra una eliminación con el snapshot de lo borrado.
func (r *Recorder) RecordDelete(companyID, userID, entityType, entityID string, oldObj any) {
	r.record(companyID, userID, entity.AuditActionDelete, entityType, entityID, Serialize(oldObj), nil, nil)
}

// RecordLogin registra un inicio de sesión (sin entidad asociada).
func (r *Recorder) RecordLogin(companyID, userID string) {
	r.record(companyID, userID, entity.AuditActionLogin, "", "", nil, nil, nil)
}

func (r *Recorder) record(companyID, userID, action, entityType, entityID string,
	oldValues, newValues map[string]any, changes map[string]Change,
) {
	log := &entity.AuditLog{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		OldValues:  marshalOrNil(oldValues),
		NewValues:  marshalOrNil(newValues),
		Changes:    marshalOrNil(changes),
		CreatedAt:  time.Now(),
	}
	if err := r.repo.Create(log); err != nil && r.log != nil {
		r.log.Warn().Err(err).
			Str("action", action).
			Str("entity_type", entityType).
			Str("entity_id", entityID).
			Msg("no se pudo escribir el log de auditoría")
	}
}

// Serialize convierte una entidad a map campo->valor pasando por JSON.
// Devuelve map vacío si el objeto es nil o no serializable.
func Serialize(obj any) map[string]any {
	if obj == nil {
		return map[string]any{}
	}
	raw, err := json.Marshal(obj)
	if err != nil {
		return map[string]any{}
	}
	values := map[string]any{}
	if err := json.Unmarshal(raw, &values); err != nil {
		return map[string]any{}
	}
	return values
}

// ComputeChanges calcula las diferencias campo a campo entre dos snapshots.
// Incluye campos presentes solo en uno de los dos lados.
func ComputeChanges(oldValues, newValues map[string]any) map[string]Change {
	changes := map[string]Change{}
	for key, oldVal := range oldValues {
		newVal, ok := newValues[key]
		if !ok || !equalValues(oldVal, newVal) {
			changes[key] = Change{Old: oldVal, New: newVal}
		}
	}
	for key, newVal := range newValues {
		if _, ok := oldValues[key]; !ok {
			changes[key] = Change{Old: nil, New: newVal}
		}
	}
	return changes
}

// equalValues compara valores ya normalizados por JSON (números como float64,
// fechas como string); la comparación por re-marshal cubre mapas anidados.
func equalValues(a, b any) bool {
	ra, errA := json.Marshal(a)
	rb, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return string(ra) == string(rb)
}

func marshalOrNil(v any) json.RawMessage {
	if v == nil {
		return nil
	}
	switch m := v.(type) {
	case map[string]any:
		if len(m) == 0 {
			return nil
		}
	case map[string]Change:
		if len(m) == 0 {
			return nil
		}
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return raw
}
