package repository

import (
	"context"

	"github.com/jcastillo-pa/salon-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// Todas las operaciones reciben el businessID explícito: las consultas por ID
// filtran también por negocio, así un registro ajeno es indistinguible de uno
// inexistente (nil) y no hay fuga entre tenants.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	// GetByID devuelve el cliente o nil si no existe en ese negocio.
	GetByID(ctx context.Context, businessID, id string) (*entity.Customer, error)
	// ListByBusiness devuelve todos los clientes del negocio, más recientes primero.
	ListByBusiness(ctx context.Context, businessID string) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	// Delete elimina el cliente (hard delete). Devuelve false si no había fila.
	Delete(ctx context.Context, businessID, id string) (bool, error)
}
