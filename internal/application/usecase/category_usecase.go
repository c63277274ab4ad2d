package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/instock-api/internal/application/audit"
	"github.com/jhoicas/instock-api/internal/application/dto"
	"github.com/jhoicas/instock-api/internal/domain"
	"github.com/jhoicas/instock-api/internal/domain/entity"
	"github.com/jhoicas/instock-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	auditRec *audit.Recorder
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, auditRec *audit.Recorder) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, auditRec: auditRec}
}

// Create crea una categoría nueva (nombre único por empresa).
func (uc *CategoryUseCase) Create(companyID, userID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, _ := uc.repo.GetByCompanyAndName(companyID, in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Status:    entity.CategoryStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	if uc.auditRec != nil {
		uc.auditRec.RecordCreate(companyID, userID, "category", category.ID, *category)
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría (nil si no existe o es de otra empresa).
func (uc *CategoryUseCase) GetByID(companyID, id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil || category.CompanyID != companyID {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// Update actualiza nombre y/o estado de la categoría.
func (uc *CategoryUseCase) Update(companyID, userID, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil || category.CompanyID != companyID {
		return nil, nil
	}
	old := *category
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Status != nil {
		category.Status = *in.Status
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	if uc.auditRec != nil {
		uc.auditRec.RecordUpdate(companyID, userID, "category", category.ID, old, *category)
	}
	return toCategoryResponse(category), nil
}

// List lista categorías por empresa con paginación.
func (uc *CategoryUseCase) List(companyID string, limit, offset int) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una categoría por ID.
func (uc *CategoryUseCase) Delete(companyID, userID, id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil || category.CompanyID != companyID {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	if uc.auditRec != nil {
		uc.auditRec.RecordDelete(companyID, userID, "category", id, *category)
	}
	return nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Name:      c.Name,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
