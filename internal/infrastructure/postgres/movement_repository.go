package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/instock-api/internal/domain/entity"
	"github.com/jhoicas/instock-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL (usable con pool o tx).
// Solo inserta y lee: la tabla es append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de movimientos. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (id, company_id, product_id, user_id, supplier_id, type, quantity, description, date, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.CompanyID, movement.ProductID, movement.UserID,
		movement.SupplierID, movement.Type, movement.Quantity, movement.Description,
		movement.Date, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `
		SELECT id, company_id, product_id, user_id, COALESCE(supplier_id, ''), type, quantity, description, date, created_at
		FROM movements WHERE id = $1`
	var m entity.Movement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.CompanyID, &m.ProductID, &m.UserID, &m.SupplierID,
		&m.Type, &m.Quantity, &m.Description, &m.Date, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// ListByCompany lista movimientos de la empresa, filtrables por producto y
// rango de fechas, ordenados por fecha descendente.
func (r *MovementRepo) ListByCompany(companyID string, filter repository.MovementFilter) ([]*entity.Movement, error) {
	var b strings.Builder
	b.WriteString(`
		SELECT id, company_id, product_id, user_id, COALESCE(supplier_id, ''), type, quantity, description, date, created_at
		FROM movements WHERE company_id = $1`)
	args := []any{companyID}

	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		b.WriteString(" AND product_id = $" + strconv.Itoa(len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		b.WriteString(" AND date >= $" + strconv.Itoa(len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		b.WriteString(" AND date <= $" + strconv.Itoa(len(args)))
	}

	args = append(args, filter.Limit)
	b.WriteString(" ORDER BY date DESC, created_at DESC LIMIT $" + strconv.Itoa(len(args)))
	args = append(args, filter.Offset)
	b.WriteString(" OFFSET $" + strconv.Itoa(len(args)))

	rows, err := r.q.Query(context.Background(), b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.ProductID, &m.UserID, &m.SupplierID,
			&m.Type, &m.Quantity, &m.Description, &m.Date, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
