package repository

import (
	"context"

	"github.com/jcastillo-pa/salon-api/internal/domain/entity"
)

// ServiceRepository define el puerto de persistencia para Service.
// Mismo contrato de aislamiento por negocio que CustomerRepository; el orden
// del listado es alfabético por nombre (el catálogo se navega por nombre, no
// por fecha de alta).
type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	// GetByID devuelve el servicio o nil si no existe en ese negocio.
	GetByID(ctx context.Context, businessID, id string) (*entity.Service, error)
	// ListByBusiness devuelve todos los servicios del negocio ordenados por nombre ascendente.
	ListByBusiness(ctx context.Context, businessID string) ([]*entity.Service, error)
	Update(ctx context.Context, service *entity.Service) error
	// Delete elimina el servicio (hard delete). Devuelve false si no había fila.
	Delete(ctx context.Context, businessID, id string) (bool, error)
}
