package audit_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/instock-api/internal/application/audit"
	"github.com/jhoicas/instock-api/internal/domain/entity"
)

// fakeAuditRepo acumula los logs en memoria.
type fakeAuditRepo struct {
	logs []*entity.AuditLog
}

func (r *fakeAuditRepo) Create(log *entity.AuditLog) error {
	r.logs = append(r.logs, log)
	return nil
}

func (r *fakeAuditRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.AuditLog, error) {
	return r.logs, nil
}

func (r *fakeAuditRepo) ListByEntity(entityType, entityID string, limit int) ([]*entity.AuditLog, error) {
	return r.logs, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeChanges: diff campo a campo
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeChanges_SoloCamposModificados(t *testing.T) {
	oldValues := map[string]any{"name": "Alcohol", "price": 25.0, "status": "ok"}
	newValues := map[string]any{"name": "Alcohol en gel", "price": 25.0, "status": "ok"}

	changes := audit.ComputeChanges(oldValues, newValues)

	require.Len(t, changes, 1, "solo name cambió")
	assert.Equal(t, "Alcohol", changes["name"].Old)
	assert.Equal(t, "Alcohol en gel", changes["name"].New)
}

func TestComputeChanges_SinCambios(t *testing.T) {
	values := map[string]any{"name": "Alcohol", "quantity": 10.0}
	changes := audit.ComputeChanges(values, values)
	assert.Empty(t, changes)
}

func TestComputeChanges_CampoAgregadoYEliminado(t *testing.T) {
	oldValues := map[string]any{"phone": "3001234567"}
	newValues := map[string]any{"address": "Cra 7 # 12-34"}

	changes := audit.ComputeChanges(oldValues, newValues)

	require.Len(t, changes, 2)
	assert.Equal(t, "3001234567", changes["phone"].Old)
	assert.Nil(t, changes["phone"].New)
	assert.Nil(t, changes["address"].Old)
	assert.Equal(t, "Cra 7 # 12-34", changes["address"].New)
}

// ──────────────────────────────────────────────────────────────────────────────
// Serialize: entidad -> map vía JSON
// ──────────────────────────────────────────────────────────────────────────────

func TestSerialize_Producto(t *testing.T) {
	p := entity.Product{
		ID:       "p1",
		Name:     "Jabón líquido",
		Quantity: 12,
		Price:    decimal.NewFromInt(8),
	}
	values := audit.Serialize(p)
	assert.Equal(t, "Jabón líquido", values["Name"])
	assert.Equal(t, float64(12), values["Quantity"], "JSON normaliza números a float64")
}

func TestSerialize_NilDevuelveVacio(t *testing.T) {
	assert.Empty(t, audit.Serialize(nil))
}

// ──────────────────────────────────────────────────────────────────────────────
// Recorder: registros completos
// ──────────────────────────────────────────────────────────────────────────────

func TestRecorder_RecordUpdateIncluyeDiff(t *testing.T) {
	repo := &fakeAuditRepo{}
	rec := audit.NewRecorder(repo, nil)

	oldP := entity.Product{ID: "p1", Name: "Alcohol", Quantity: 10}
	newP := entity.Product{ID: "p1", Name: "Alcohol", Quantity: 4, Status: entity.StatusLowStock}

	rec.RecordUpdate("c1", "u1", "product", "p1", oldP, newP)

	require.Len(t, repo.logs, 1)
	log := repo.logs[0]
	assert.Equal(t, entity.AuditActionUpdate, log.Action)
	assert.Equal(t, "product", log.EntityType)
	assert.Equal(t, "p1", log.EntityID)
	assert.NotEmpty(t, log.OldValues)
	assert.NotEmpty(t, log.NewValues)
	assert.Contains(t, string(log.Changes), "Quantity")
	assert.NotContains(t, string(log.Changes), "\"Name\"", "campos sin cambio no van en el diff")
	assert.WithinDuration(t, time.Now(), log.CreatedAt, 5*time.Second)
}

func TestRecorder_RecordCreateSinOldValues(t *testing.T) {
	repo := &fakeAuditRepo{}
	rec := audit.NewRecorder(repo, nil)

	rec.RecordCreate("c1", "u1", "category", "cat1", entity.Category{ID: "cat1", Name: "Aseo"})

	require.Len(t, repo.logs, 1)
	assert.Empty(t, repo.logs[0].OldValues)
	assert.Contains(t, string(repo.logs[0].NewValues), "Aseo")
}

func TestRecorder_RecordDeleteGuardaSnapshot(t *testing.T) {
	repo := &fakeAuditRepo{}
	rec := audit.NewRecorder(repo, nil)

	rec.RecordDelete("c1", "u1", "supplier", "s1", entity.Supplier{ID: "s1", Name: "Distribuidora Norte"})

	require.Len(t, repo.logs, 1)
	assert.Equal(t, entity.AuditActionDelete, repo.logs[0].Action)
	assert.Contains(t, string(repo.logs[0].OldValues), "Distribuidora Norte")
	assert.Empty(t, repo.logs[0].NewValues)
}
