package stock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appstock "github.com/jhoicas/instock-api/internal/application/stock"
	"github.com/jhoicas/instock-api/internal/domain"
	"github.com/jhoicas/instock-api/internal/domain/entity"
	"github.com/jhoicas/instock-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: emulan el TxRunner y los repositorios sin base de datos.
// El fake de transacción toma snapshot del estado y lo restaura si fn falla,
// para poder verificar la garantía todo-o-nada del motor.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) GetByCompanyNameAndCategory(companyID, name, categoryID string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.CompanyID == companyID && p.Name == name && p.CategoryID == categoryID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateQuantityStatus(productID string, quantity int, status string) error {
	p, ok := r.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	p.Status = status
	return nil
}

func (r *fakeProductRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Delete(id string) error { delete(r.products, id); return nil }

type fakeMovementRepo struct {
	movements []*entity.Movement
	failNext  error // si no es nil, Create falla una vez
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return err
	}
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.Movement, error) {
	for _, m := range r.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) ListByCompany(companyID string, filter repository.MovementFilter) ([]*entity.Movement, error) {
	return r.movements, nil
}

type fakeTxRunner struct {
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) error) error {
	// Snapshot para emular rollback.
	snapProducts := make(map[string]*entity.Product, len(tx.products.products))
	for id, p := range tx.products.products {
		cp := *p
		snapProducts[id] = &cp
	}
	snapMovs := make([]*entity.Movement, len(tx.movements.movements))
	copy(snapMovs, tx.movements.movements)

	if err := fn(tx.products, tx.movements); err != nil {
		tx.products.products = snapProducts
		tx.movements.movements = snapMovs
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testCompanyID = "11111111-1111-4111-8111-111111111111"
	testUserID    = "22222222-2222-4222-8222-222222222222"
	testProductID = "33333333-3333-4333-8333-333333333333"
)

func newHarness(p *entity.Product) (*appstock.ApplyMovementUseCase, *fakeProductRepo, *fakeMovementRepo) {
	products := &fakeProductRepo{products: map[string]*entity.Product{}}
	if p != nil {
		products.products[p.ID] = p
	}
	movements := &fakeMovementRepo{}
	uc := appstock.NewApplyMovementUseCase(&fakeTxRunner{products: products, movements: movements})
	return uc, products, movements
}

// buildProduct arma un producto con vencimiento a N días de hoy.
func buildProduct(quantity, initial, expiresInDays int) *entity.Product {
	return &entity.Product{
		ID:              testProductID,
		CompanyID:       testCompanyID,
		CategoryID:      "44444444-4444-4444-8444-444444444444",
		Name:            "Alcohol en gel 500ml",
		Quantity:        quantity,
		InitialQuantity: initial,
		Price:           decimal.NewFromInt(25),
		ExpirationDate:  time.Now().AddDate(0, 0, expiresInDays),
		Status:          entity.StatusOK,
	}
}

func entryInput(q int) appstock.MovementInput {
	return appstock.MovementInput{
		CompanyID: testCompanyID,
		UserID:    testUserID,
		ProductID: testProductID,
		Type:      entity.MovementTypeEntry,
		Quantity:  q,
	}
}

func exitInput(q int) appstock.MovementInput {
	in := entryInput(q)
	in.Type = entity.MovementTypeExit
	return in
}

// ──────────────────────────────────────────────────────────────────────────────
// Cantidad: entrada suma, salida resta con piso en cero
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_EntradaSumaCantidad(t *testing.T) {
	uc, products, _ := newHarness(buildProduct(10, 20, 400))

	mov, err := uc.ApplyMovement(context.Background(), entryInput(5))
	require.NoError(t, err)
	require.NotNil(t, mov)

	p, _ := products.GetByID(testProductID)
	assert.Equal(t, 15, p.Quantity, "entry de 5 sobre 10 debe dejar 15")
}

func TestApplyMovement_SalidaRestaCantidad(t *testing.T) {
	uc, products, _ := newHarness(buildProduct(10, 20, 400))

	_, err := uc.ApplyMovement(context.Background(), exitInput(4))
	require.NoError(t, err)

	p, _ := products.GetByID(testProductID)
	assert.Equal(t, 6, p.Quantity)
}

// Escenario del sistema: 10/20, vence en 400 días, salida de 15.
// La cantidad se recorta a 0 (nunca -5) y el estado recalculado es low-stock
// porque 0 < 20/2. El recorte NO es un error.
func TestApplyMovement_SalidaExcesivaRecortaEnCero(t *testing.T) {
	uc, products, _ := newHarness(buildProduct(10, 20, 400))

	mov, err := uc.ApplyMovement(context.Background(), exitInput(15))
	require.NoError(t, err, "la sobre-salida se recorta, no se rechaza")

	p, _ := products.GetByID(testProductID)
	assert.Equal(t, 0, p.Quantity, "el piso es cero, nunca negativo")
	assert.Equal(t, entity.StatusLowStock, p.Status)
	assert.Equal(t, 15, mov.Quantity, "el movimiento registra la cantidad solicitada")
}

// Dos salidas de 6 sobre 10: la segunda ve la cantidad ya actualizada (el
// bloqueo de fila serializa los movimientos) y el resultado es 0, nunca 4.
func TestApplyMovement_SalidasSerializadas(t *testing.T) {
	uc, products, _ := newHarness(buildProduct(10, 20, 400))

	_, err := uc.ApplyMovement(context.Background(), exitInput(6))
	require.NoError(t, err)
	_, err = uc.ApplyMovement(context.Background(), exitInput(6))
	require.NoError(t, err)

	p, _ := products.GetByID(testProductID)
	assert.Equal(t, 0, p.Quantity, "max(10-6-6, 0) = 0")
}

// ──────────────────────────────────────────────────────────────────────────────
// Estado: siempre recalculado sobre la cantidad post-movimiento
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_RecalculaEstadoTrasEntrada(t *testing.T) {
	p := buildProduct(4, 20, 400)
	p.Status = entity.StatusLowStock
	uc, products, _ := newHarness(p)

	_, err := uc.ApplyMovement(context.Background(), entryInput(10))
	require.NoError(t, err)

	got, _ := products.GetByID(testProductID)
	assert.Equal(t, entity.StatusOK, got.Status, "14 >= 20/2 vuelve a ok")
}

// Escenario del sistema: 5/10 con vencimiento a 3 días. Aunque la cantidad
// también cumpla stock bajo, gana la regla de vencimiento próximo.
func TestApplyMovement_VencimientoProximoGana(t *testing.T) {
	uc, products, _ := newHarness(buildProduct(6, 10, 3))

	_, err := uc.ApplyMovement(context.Background(), exitInput(1))
	require.NoError(t, err)

	p, _ := products.GetByID(testProductID)
	assert.Equal(t, entity.StatusNearExpiry, p.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimiento registrado
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_RegistraMovimientoCompleto(t *testing.T) {
	uc, _, movements := newHarness(buildProduct(10, 20, 400))

	in := entryInput(5)
	in.Description = "reposición semanal"
	mov, err := uc.ApplyMovement(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, movements.movements, 1)
	saved := movements.movements[0]
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, testCompanyID, saved.CompanyID)
	assert.Equal(t, testProductID, saved.ProductID)
	assert.Equal(t, testUserID, saved.UserID)
	assert.Equal(t, entity.MovementTypeEntry, saved.Type)
	assert.Equal(t, 5, saved.Quantity)
	assert.Equal(t, "reposición semanal", saved.Description)
	assert.WithinDuration(t, time.Now(), saved.CreatedAt, 5*time.Second)
	assert.Equal(t, mov.ID, saved.ID)
}

func TestApplyMovement_RespetaFechaRetrodatada(t *testing.T) {
	uc, _, movements := newHarness(buildProduct(10, 20, 400))

	backdated := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	in := entryInput(2)
	in.OccurredAt = &backdated

	_, err := uc.ApplyMovement(context.Background(), in)
	require.NoError(t, err)

	saved := movements.movements[0]
	assert.True(t, saved.Date.Equal(backdated), "Date debe ser la fecha retro-datada")
	assert.False(t, saved.CreatedAt.Equal(backdated), "CreatedAt siempre la asigna el servidor")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación y errores: nada se escribe si la entrada es inválida
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_CantidadNoPositiva(t *testing.T) {
	uc, products, movements := newHarness(buildProduct(10, 20, 400))

	for _, q := range []int{0, -3} {
		_, err := uc.ApplyMovement(context.Background(), entryInput(q))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe rechazarse", q)
	}
	p, _ := products.GetByID(testProductID)
	assert.Equal(t, 10, p.Quantity, "nada debe haberse escrito")
	assert.Empty(t, movements.movements)
}

func TestApplyMovement_TipoDesconocido(t *testing.T) {
	uc, _, movements := newHarness(buildProduct(10, 20, 400))

	in := entryInput(5)
	in.Type = "transfer"
	_, err := uc.ApplyMovement(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, movements.movements)
}

func TestApplyMovement_ReferenciasFaltantes(t *testing.T) {
	uc, _, _ := newHarness(buildProduct(10, 20, 400))

	in := entryInput(5)
	in.UserID = ""
	_, err := uc.ApplyMovement(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyMovement_ProductoInexistente(t *testing.T) {
	uc, _, _ := newHarness(nil)

	_, err := uc.ApplyMovement(context.Background(), entryInput(5))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApplyMovement_ProductoDeOtraEmpresa(t *testing.T) {
	p := buildProduct(10, 20, 400)
	p.CompanyID = "99999999-9999-4999-8999-999999999999"
	uc, _, _ := newHarness(p)

	_, err := uc.ApplyMovement(context.Background(), entryInput(5))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Todo-o-nada: si falla el insert del movimiento, la actualización de la
// cantidad también se revierte y el producto queda como estaba.
func TestApplyMovement_FalloDePersistenciaRevierteTodo(t *testing.T) {
	uc, products, movements := newHarness(buildProduct(10, 20, 400))
	movements.failNext = errors.New("insert movement: connection reset")

	_, err := uc.ApplyMovement(context.Background(), exitInput(4))
	require.Error(t, err)

	p, _ := products.GetByID(testProductID)
	assert.Equal(t, 10, p.Quantity, "la cantidad no debe cambiar si el movimiento no se guardó")
	assert.Empty(t, movements.movements, "el movimiento no debe existir sin su cambio de cantidad")
}
