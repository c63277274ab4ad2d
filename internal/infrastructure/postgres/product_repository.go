package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/instock-api/internal/domain"
	"github.com/jhoicas/instock-api/internal/domain/entity"
	"github.com/jhoicas/instock-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, company_id, category_id, supplier_id, name, quantity, initial_quantity, price, expiration_date, status, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto/lote.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.CompanyID, product.CategoryID, product.SupplierID,
		product.Name, product.Quantity, product.InitialQuantity, product.Price,
		product.ExpirationDate, product.Status, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumnsCoalesced + `
		FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetForUpdate obtiene el producto y bloquea su fila (SELECT ... FOR UPDATE)
// para serializar movimientos concurrentes contra el mismo producto.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumnsCoalesced + `
		FROM products WHERE id = $1
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product for update")
}

// GetByCompanyNameAndCategory obtiene un producto por empresa, nombre y categoría
// (la tripleta es única).
func (r *ProductRepo) GetByCompanyNameAndCategory(companyID, name, categoryID string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumnsCoalesced + `
		FROM products WHERE company_id = $1 AND name = $2 AND category_id = $3`
	return r.scanOne(r.q.QueryRow(context.Background(), query, companyID, name, categoryID), "get product by name")
}

// Update actualiza los campos editables. Quantity no se toca acá: cambia solo
// vía UpdateQuantityStatus dentro de la transacción de movimientos.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, category_id = $3, supplier_id = NULLIF($4, ''), price = $5,
			expiration_date = $6, status = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.CategoryID, product.SupplierID,
		product.Price, product.ExpirationDate, product.Status, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateQuantityStatus actualiza solo cantidad y estado (motor de movimientos).
func (r *ProductRepo) UpdateQuantityStatus(productID string, quantity int, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = $2, status = $3, updated_at = now() WHERE id = $1`,
		productID, quantity, status,
	)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	return nil
}

// ListByCompany lista productos por empresa con paginación.
func (r *ProductRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumnsCoalesced + `
		FROM products WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.CategoryID, &p.SupplierID, &p.Name,
			&p.Quantity, &p.InitialQuantity, &p.Price, &p.ExpirationDate, &p.Status,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID. Los movimientos del producto caen en
// cascada por la FK.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// supplier_id es NULLable; se lee como '' para el dominio.
const productColumnsCoalesced = `id, company_id, category_id, COALESCE(supplier_id, ''), name, quantity, initial_quantity, price, expiration_date, status, created_at, updated_at`

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.CompanyID, &p.CategoryID, &p.SupplierID, &p.Name,
		&p.Quantity, &p.InitialQuantity, &p.Price, &p.ExpirationDate, &p.Status,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
