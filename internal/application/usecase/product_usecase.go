package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/instock-api/internal/application/audit"
	"github.com/jhoicas/instock-api/internal/application/dto"
	appstock "github.com/jhoicas/instock-api/internal/application/stock"
	"github.com/jhoicas/instock-api/internal/domain"
	"github.com/jhoicas/instock-api/internal/domain/entity"
	"github.com/jhoicas/instock-api/internal/domain/repository"
	domainstock "github.com/jhoicas/instock-api/internal/domain/stock"
)

// Descripción del movimiento de apertura que se sintetiza al registrar un lote.
const openingEntryDescription = "Registro de entrada inicial del lote."

// ProductUseCase casos de uso CRUD para productos. Quantity y Status nunca
// se editan directamente: la cantidad cambia vía movimientos y el estado se
// recalcula en cada guardado.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
	suppliers  repository.SupplierRepository
	txRunner   appstock.TxRunner
	auditRec   *audit.Recorder
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categories repository.CategoryRepository,
	suppliers repository.SupplierRepository,
	txRunner appstock.TxRunner,
	auditRec *audit.Recorder,
) *ProductUseCase {
	return &ProductUseCase{
		repo:       repo,
		categories: categories,
		suppliers:  suppliers,
		txRunner:   txRunner,
		auditRec:   auditRec,
	}
}

// Create registra un producto/lote nuevo. La cantidad del request queda como
// InitialQuantity y como cantidad de apertura, y en la misma transacción se
// sintetiza el movimiento de entrada inicial que documenta ese saldo.
func (uc *ProductUseCase) Create(ctx context.Context, companyID, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Quantity <= 0 {
		// Garantiza InitialQuantity >= 1: la regla de stock bajo nunca divide por cero.
		return nil, domain.ErrInvalidInput
	}
	expiration, err := parseDate(in.ExpirationDate)
	if err != nil {
		return nil, err
	}

	category, err := uc.categories.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil || category.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.SupplierID != "" {
		supplier, err := uc.suppliers.GetByID(in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil || supplier.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
	}

	existing, _ := uc.repo.GetByCompanyNameAndCategory(companyID, in.Name, in.CategoryID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		CategoryID:      in.CategoryID,
		SupplierID:      in.SupplierID,
		Name:            in.Name,
		Quantity:        in.Quantity,
		InitialQuantity: in.Quantity,
		Price:           in.Price,
		ExpirationDate:  expiration,
		Status:          domainstock.EvaluateStatus(in.Quantity, in.Quantity, expiration, now),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	opening := &entity.Movement{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		ProductID:   product.ID,
		UserID:      userID,
		SupplierID:  in.SupplierID,
		Type:        entity.MovementTypeEntry,
		Quantity:    in.Quantity,
		Description: openingEntryDescription,
		Date:        now,
		CreatedAt:   now,
	}

	// Producto y movimiento de apertura se confirman juntos.
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		return movementRepo.Create(opening)
	})
	if err != nil {
		return nil, err
	}

	if uc.auditRec != nil {
		uc.auditRec.RecordCreate(companyID, userID, "product", product.ID, *product)
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID (nil si no existe o es de otra empresa).
func (uc *ProductUseCase) GetByID(companyID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza campos editables (nombre, categoría, proveedor, precio,
// vencimiento) y recalcula el estado antes de persistir. No admite Quantity.
func (uc *ProductUseCase) Update(companyID, userID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, nil
	}
	old := *product

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.CategoryID != nil {
		category, err := uc.categories.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil || category.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = *in.CategoryID
	}
	if in.SupplierID != nil {
		if *in.SupplierID != "" {
			supplier, err := uc.suppliers.GetByID(*in.SupplierID)
			if err != nil {
				return nil, err
			}
			if supplier == nil || supplier.CompanyID != companyID {
				return nil, domain.ErrNotFound
			}
		}
		product.SupplierID = *in.SupplierID
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.ExpirationDate != nil {
		expiration, err := parseDate(*in.ExpirationDate)
		if err != nil {
			return nil, err
		}
		product.ExpirationDate = expiration
	}

	now := time.Now()
	product.Status = domainstock.EvaluateStatus(product.Quantity, product.InitialQuantity, product.ExpirationDate, now)
	product.UpdatedAt = now
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	if uc.auditRec != nil {
		uc.auditRec.RecordUpdate(companyID, userID, "product", product.ID, old, *product)
	}
	return toProductResponse(product), nil
}

// List lista productos por empresa con paginación.
func (uc *ProductUseCase) List(companyID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto. El historial de movimientos del producto cae
// en cascada (política de la FK, igual que el sistema original).
func (uc *ProductUseCase) Delete(companyID, userID, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil || product.CompanyID != companyID {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	if uc.auditRec != nil {
		uc.auditRec.RecordDelete(companyID, userID, "product", id, *product)
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:              p.ID,
		CompanyID:       p.CompanyID,
		CategoryID:      p.CategoryID,
		SupplierID:      p.SupplierID,
		Name:            p.Name,
		Quantity:        p.Quantity,
		InitialQuantity: p.InitialQuantity,
		Price:           p.Price,
		ExpirationDate:  p.ExpirationDate.Format("2006-01-02"),
		Status:          p.Status,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// parseDate interpreta fechas YYYY-MM-DD del request.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}
