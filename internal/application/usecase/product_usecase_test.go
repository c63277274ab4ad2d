package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/instock-api/internal/application/dto"
	"github.com/jhoicas/instock-api/internal/application/usecase"
	"github.com/jhoicas/instock-api/internal/domain"
	"github.com/jhoicas/instock-api/internal/domain/entity"
	"github.com/jhoicas/instock-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (sin base de datos). El fake de transacción toma snapshot
// del estado y lo restaura si fn falla, para verificar el todo-o-nada del alta
// producto + movimiento de apertura.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }

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
	var list []*entity.Product
	for _, p := range r.products {
		if p.CompanyID == companyID {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeProductRepo) Delete(id string) error { delete(r.products, id); return nil }

type fakeMovementRepo struct {
	movements []*entity.Movement
	failNext  error
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

func (r *fakeMovementRepo) GetByID(id string) (*entity.Movement, error) { return nil, nil }

func (r *fakeMovementRepo) ListByCompany(companyID string, filter repository.MovementFilter) ([]*entity.Movement, error) {
	return r.movements, nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error { r.categories[c.ID] = c; return nil }

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) GetByCompanyAndName(companyID, name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.CompanyID == companyID && c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error { r.categories[c.ID] = c; return nil }

func (r *fakeCategoryRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Category, error) {
	return nil, nil
}

func (r *fakeCategoryRepo) Delete(id string) error { delete(r.categories, id); return nil }

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error { r.suppliers[s.ID] = s; return nil }

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSupplierRepo) Update(s *entity.Supplier) error { r.suppliers[s.ID] = s; return nil }

func (r *fakeSupplierRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Supplier, error) {
	return nil, nil
}

func (r *fakeSupplierRepo) Delete(id string) error { delete(r.suppliers, id); return nil }

type fakeTxRunner struct {
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) error) error {
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
	testCompanyID  = "11111111-1111-4111-8111-111111111111"
	testUserID     = "22222222-2222-4222-8222-222222222222"
	testCategoryID = "44444444-4444-4444-8444-444444444444"
	testSupplierID = "55555555-5555-4555-8555-555555555555"
)

type harness struct {
	uc        *usecase.ProductUseCase
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func newHarness() *harness {
	products := &fakeProductRepo{products: map[string]*entity.Product{}}
	movements := &fakeMovementRepo{}
	categories := &fakeCategoryRepo{categories: map[string]*entity.Category{
		testCategoryID: {ID: testCategoryID, CompanyID: testCompanyID, Name: "Medicamentos", Status: entity.CategoryStatusActive},
	}}
	suppliers := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		testSupplierID: {ID: testSupplierID, CompanyID: testCompanyID, Name: "Droguería Central", Status: "active"},
	}}
	uc := usecase.NewProductUseCase(products, categories, suppliers,
		&fakeTxRunner{products: products, movements: movements}, nil)
	return &harness{uc: uc, products: products, movements: movements}
}

func createRequest(quantity int, expiresInDays int) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:           "Ibuprofeno 400mg",
		CategoryID:     testCategoryID,
		SupplierID:     testSupplierID,
		Quantity:       quantity,
		Price:          decimal.NewFromFloat(12.50),
		ExpirationDate: time.Now().AddDate(0, 0, expiresInDays).Format("2006-01-02"),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

// El alta deja Quantity = InitialQuantity y sintetiza el movimiento de
// entrada inicial en la misma operación.
func TestProductCreate_SintetizaMovimientoDeApertura(t *testing.T) {
	h := newHarness()

	out, err := h.uc.Create(context.Background(), testCompanyID, testUserID, createRequest(40, 365))
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, 40, out.Quantity)
	assert.Equal(t, 40, out.InitialQuantity)
	assert.Equal(t, entity.StatusOK, out.Status)

	require.Len(t, h.movements.movements, 1, "debe existir exactamente un movimiento de apertura")
	opening := h.movements.movements[0]
	assert.Equal(t, entity.MovementTypeEntry, opening.Type)
	assert.Equal(t, 40, opening.Quantity)
	assert.Equal(t, out.ID, opening.ProductID)
	assert.Equal(t, testUserID, opening.UserID)
	assert.Equal(t, "Registro de entrada inicial del lote.", opening.Description)
}

// Lote que nace venciendo en menos de 7 días arranca en near-expiry.
func TestProductCreate_EstadoInicialPorVencer(t *testing.T) {
	h := newHarness()

	out, err := h.uc.Create(context.Background(), testCompanyID, testUserID, createRequest(40, 3))
	require.NoError(t, err)
	assert.Equal(t, entity.StatusNearExpiry, out.Status)
}

func TestProductCreate_CantidadCeroRechazada(t *testing.T) {
	h := newHarness()

	_, err := h.uc.Create(context.Background(), testCompanyID, testUserID, createRequest(0, 365))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, h.products.products, "no debe persistirse nada")
	assert.Empty(t, h.movements.movements)
}

func TestProductCreate_NombreDuplicadoEnCategoria(t *testing.T) {
	h := newHarness()

	_, err := h.uc.Create(context.Background(), testCompanyID, testUserID, createRequest(40, 365))
	require.NoError(t, err)

	_, err = h.uc.Create(context.Background(), testCompanyID, testUserID, createRequest(10, 365))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	h := newHarness()
	in := createRequest(40, 365)
	in.CategoryID = "99999999-9999-4999-8999-999999999999"

	_, err := h.uc.Create(context.Background(), testCompanyID, testUserID, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Si falla el insert del movimiento de apertura, el producto tampoco queda.
func TestProductCreate_FallaMovimiento_RevierteProducto(t *testing.T) {
	h := newHarness()
	h.movements.failNext = errors.New("insert movement: conexión perdida")

	_, err := h.uc.Create(context.Background(), testCompanyID, testUserID, createRequest(40, 365))
	require.Error(t, err)

	assert.Empty(t, h.products.products, "el producto debe revertirse junto con el movimiento")
	assert.Empty(t, h.movements.movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update / Get / Delete
// ──────────────────────────────────────────────────────────────────────────────

// Cambiar el vencimiento a una fecha cercana recalcula el estado al guardar.
func TestProductUpdate_RecalculaEstado(t *testing.T) {
	h := newHarness()
	out, err := h.uc.Create(context.Background(), testCompanyID, testUserID, createRequest(40, 365))
	require.NoError(t, err)
	require.Equal(t, entity.StatusOK, out.Status)

	soon := time.Now().AddDate(0, 0, 2).Format("2006-01-02")
	updated, err := h.uc.Update(testCompanyID, testUserID, out.ID, dto.UpdateProductRequest{
		ExpirationDate: &soon,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusNearExpiry, updated.Status)
	assert.Equal(t, 40, updated.Quantity, "update nunca toca la cantidad")
}

func TestProductGetByID_OtraEmpresaInvisible(t *testing.T) {
	h := newHarness()
	out, err := h.uc.Create(context.Background(), testCompanyID, testUserID, createRequest(40, 365))
	require.NoError(t, err)

	got, err := h.uc.GetByID("66666666-6666-4666-8666-666666666666", out.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "un producto de otra empresa se responde como inexistente")
}

func TestProductDelete_OtraEmpresa_NotFound(t *testing.T) {
	h := newHarness()
	out, err := h.uc.Create(context.Background(), testCompanyID, testUserID, createRequest(40, 365))
	require.NoError(t, err)

	err = h.uc.Delete("66666666-6666-4666-8666-666666666666", testUserID, out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, ok := h.products.products[out.ID]
	assert.True(t, ok, "el producto no debe borrarse")
}
