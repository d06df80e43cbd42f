package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jcastillo-pa/salon-api/internal/domain"
	"github.com/jcastillo-pa/salon-api/internal/domain/entity"
	"github.com/jcastillo-pa/salon-api/internal/domain/repository"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo implementación de BusinessRepository (usable con pool o tx).
type BusinessRepo struct {
	q Querier
}

// NewBusinessRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBusinessRepository(q Querier) *BusinessRepo {
	return &BusinessRepo{q: q}
}

// Create persiste un nuevo negocio.
func (r *BusinessRepo) Create(ctx context.Context, b *entity.Business) error {
	query := `
		INSERT INTO businesses (id, name, email, phone, address, default_currency, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		b.ID, b.Name, b.Email, b.Phone, b.Address, b.DefaultCurrency, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert business: %w", err)
	}
	return nil
}

// GetByID obtiene un negocio por ID, o nil si no existe.
func (r *BusinessRepo) GetByID(ctx context.Context, id string) (*entity.Business, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(address, ''),
		       default_currency, created_at, updated_at
		FROM businesses WHERE id = $1`
	var b entity.Business
	err := r.q.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Name, &b.Email, &b.Phone, &b.Address, &b.DefaultCurrency, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business: %w", err)
	}
	return &b, nil
}

// CreateMembership persiste la relación usuario-negocio.
func (r *BusinessRepo) CreateMembership(ctx context.Context, m *entity.BusinessUser) error {
	query := `
		INSERT INTO business_users (id, business_id, user_id, role, commission_rate, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.BusinessID, m.UserID, m.Role, m.CommissionRate, m.IsActive, m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert business_user: %w", err)
	}
	return nil
}

// GetMembershipByUser devuelve la primera membresía activa del usuario (la más
// antigua), o nil si no existe.
func (r *BusinessRepo) GetMembershipByUser(ctx context.Context, userID string) (*entity.BusinessUser, error) {
	query := `
		SELECT id, business_id, user_id, role, commission_rate, is_active, created_at
		FROM business_users
		WHERE user_id = $1 AND is_active
		ORDER BY created_at
		LIMIT 1`
	var m entity.BusinessUser
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&m.ID, &m.BusinessID, &m.UserID, &m.Role, &m.CommissionRate, &m.IsActive, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get membership: %w", err)
	}
	return &m, nil
}
