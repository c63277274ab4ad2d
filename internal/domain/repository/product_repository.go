package repository

import "github.com/jhoicas/instock-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Quantity y Status solo se escriben vía UpdateQuantityStatus dentro de la
// transacción del motor de movimientos, o en Create/Update que recalculan
// el estado antes de persistir.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT ... FOR UPDATE) para
	// serializar movimientos concurrentes contra el mismo producto.
	GetForUpdate(id string) (*entity.Product, error)
	GetByCompanyNameAndCategory(companyID, name, categoryID string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateQuantityStatus(productID string, quantity int, status string) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
