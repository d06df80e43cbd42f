package repository

import (
	"context"

	"github.com/jcastillo-pa/salon-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// GetByID devuelve el usuario o nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// FindByEmail devuelve el usuario o nil si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
