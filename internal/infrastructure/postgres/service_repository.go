package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jcastillo-pa/salon-api/internal/domain/entity"
	"github.com/jcastillo-pa/salon-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implementación de ServiceRepository (usable con pool o tx).
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

// Create persiste un nuevo servicio.
func (r *ServiceRepo) Create(ctx context.Context, s *entity.Service) error {
	query := `
		INSERT INTO services (id, business_id, name, description, duration, price, currency, category, active, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, NULLIF($8, ''), $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.BusinessID, s.Name, s.Description, s.Duration, s.Price, s.Currency,
		s.Category, s.Active, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByID obtiene un servicio por ID dentro del negocio, o nil si no existe.
func (r *ServiceRepo) GetByID(ctx context.Context, businessID, id string) (*entity.Service, error) {
	query := `
		SELECT id, business_id, name, COALESCE(description, ''), duration, price, currency,
		       COALESCE(category, ''), active, created_at, updated_at
		FROM services WHERE id = $1 AND business_id = $2`
	var s entity.Service
	err := r.q.QueryRow(ctx, query, id, businessID).Scan(
		&s.ID, &s.BusinessID, &s.Name, &s.Description, &s.Duration, &s.Price, &s.Currency,
		&s.Category, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &s, nil
}

// ListByBusiness lista los servicios del negocio ordenados por nombre ascendente.
func (r *ServiceRepo) ListByBusiness(ctx context.Context, businessID string) ([]*entity.Service, error) {
	query := `
		SELECT id, business_id, name, COALESCE(description, ''), duration, price, currency,
		       COALESCE(category, ''), active, created_at, updated_at
		FROM services WHERE business_id = $1 ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()
	var list []*entity.Service
	for rows.Next() {
		var s entity.Service
		if err := rows.Scan(&s.ID, &s.BusinessID, &s.Name, &s.Description, &s.Duration, &s.Price,
			&s.Currency, &s.Category, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza los campos mutables de un servicio. ID y business_id son
// inmutables: solo participan en el WHERE.
func (r *ServiceRepo) Update(ctx context.Context, s *entity.Service) error {
	query := `
		UPDATE services
		SET name = $3, description = NULLIF($4, ''), duration = $5, price = $6, currency = $7,
		    category = NULLIF($8, ''), active = $9, updated_at = $10
		WHERE id = $1 AND business_id = $2`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.BusinessID, s.Name, s.Description, s.Duration, s.Price, s.Currency,
		s.Category, s.Active, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

// Delete elimina un servicio del negocio. Devuelve false si no había fila.
func (r *ServiceRepo) Delete(ctx context.Context, businessID, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM services WHERE id = $1 AND business_id = $2`, id, businessID)
	if err != nil {
		return false, fmt.Errorf("delete service: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
