package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jcastillo-pa/salon-api/internal/domain/entity"
	"github.com/jcastillo-pa/salon-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente. Los opcionales en blanco se guardan como NULL.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (id, business_id, name, email, phone, notes, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7, $8)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.BusinessID, c.Name, c.Email, c.Phone, c.Notes, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID dentro del negocio, o nil si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, businessID, id string) (*entity.Customer, error) {
	query := `
		SELECT id, business_id, name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(notes, ''),
		       created_at, updated_at
		FROM customers WHERE id = $1 AND business_id = $2`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, id, businessID).Scan(
		&c.ID, &c.BusinessID, &c.Name, &c.Email, &c.Phone, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// ListByBusiness lista los clientes del negocio, más recientes primero.
func (r *CustomerRepo) ListByBusiness(ctx context.Context, businessID string) ([]*entity.Customer, error) {
	query := `
		SELECT id, business_id, name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(notes, ''),
		       created_at, updated_at
		FROM customers WHERE business_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.BusinessID, &c.Name, &c.Email, &c.Phone, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza los campos mutables de un cliente. ID y business_id son
// inmutables: solo participan en el WHERE.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $3, email = NULLIF($4, ''), phone = NULLIF($5, ''), notes = NULLIF($6, ''), updated_at = $7
		WHERE id = $1 AND business_id = $2`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.BusinessID, c.Name, c.Email, c.Phone, c.Notes, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente del negocio. Devuelve false si no había fila.
func (r *CustomerRepo) Delete(ctx context.Context, businessID, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1 AND business_id = $2`, id, businessID)
	if err != nil {
		return false, fmt.Errorf("delete customer: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
