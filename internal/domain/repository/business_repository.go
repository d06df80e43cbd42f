package repository

import (
	"context"

	"github.com/jcastillo-pa/salon-api/internal/domain/entity"
)

// BusinessRepository define el puerto de persistencia para Business y BusinessUser.
type BusinessRepository interface {
	Create(ctx context.Context, business *entity.Business) error
	GetByID(ctx context.Context, id string) (*entity.Business, error)

	// CreateMembership persiste la relación usuario-negocio.
	CreateMembership(ctx context.Context, membership *entity.BusinessUser) error
	// GetMembershipByUser devuelve la primera membresía activa del usuario
	// (la más antigua) o nil si no existe. No hay multi-negocio por sesión.
	GetMembershipByUser(ctx context.Context, userID string) (*entity.BusinessUser, error)
}
