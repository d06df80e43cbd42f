package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jcastillo-pa/salon-api/internal/application/dto"
	"github.com/jcastillo-pa/salon-api/internal/domain"
	"github.com/jcastillo-pa/salon-api/internal/domain/entity"
	"github.com/jcastillo-pa/salon-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// BusinessTxRunner ejecuta un callback con un BusinessRepository transaccional.
// Lo implementa postgres.TxRunner; la interfaz evita el import circular.
type BusinessTxRunner interface {
	Run(ctx context.Context, fn func(repo repository.BusinessRepository) error) error
}

// BusinessUseCase resuelve el negocio del usuario autenticado y permite crear
// negocios nuevos. La resolución es de solo lectura y se re-consulta en cada
// llamada (sin caché).
type BusinessUseCase struct {
	repo repository.BusinessRepository
	tx   BusinessTxRunner
}

// NewBusinessUseCase construye el caso de uso.
func NewBusinessUseCase(repo repository.BusinessRepository, tx BusinessTxRunner) *BusinessUseCase {
	return &BusinessUseCase{repo: repo, tx: tx}
}

// ResolveCurrent mapea el usuario autenticado a su negocio, rol y comisión.
// El userID llega explícito desde el middleware de auth; aquí no hay estado
// global de sesión. Errores:
//   - ErrUnauthenticated si no hay usuario.
//   - ErrNotFound si el usuario no tiene membresía activa, o si la membresía
//     apunta a un negocio que ya no existe. Ambas condiciones son distintas de
//     "lista vacía": sin negocio resuelto no se consulta ninguna entidad.
func (uc *BusinessUseCase) ResolveCurrent(ctx context.Context, userID string) (*dto.BusinessContextResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	membership, err := uc.repo.GetMembershipByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return nil, domain.ErrNotFound
	}
	business, err := uc.repo.GetByID(ctx, membership.BusinessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.BusinessContextResponse{
		BusinessID:      business.ID,
		BusinessName:    business.Name,
		Role:            membership.Role,
		CommissionRate:  membership.CommissionRate,
		DefaultCurrency: business.DefaultCurrency,
	}, nil
}

// Create crea un negocio y la membresía owner del creador en una transacción.
func (uc *BusinessUseCase) Create(ctx context.Context, userID string, in dto.CreateBusinessRequest) (*dto.BusinessResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	currency := in.DefaultCurrency
	if currency == "" {
		currency = entity.CurrencyUSD
	}
	if !entity.ValidCurrency(currency) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	business := &entity.Business{
		ID:              uuid.New().String(),
		Name:            name,
		Email:           strings.TrimSpace(in.Email),
		Phone:           strings.TrimSpace(in.Phone),
		Address:         strings.TrimSpace(in.Address),
		DefaultCurrency: currency,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	membership := &entity.BusinessUser{
		ID:             uuid.New().String(),
		BusinessID:     business.ID,
		UserID:         userID,
		Role:           entity.RoleOwner,
		CommissionRate: decimal.Zero,
		IsActive:       true,
		CreatedAt:      now,
	}
	err := uc.tx.Run(ctx, func(repo repository.BusinessRepository) error {
		if err := repo.Create(ctx, business); err != nil {
			return err
		}
		return repo.CreateMembership(ctx, membership)
	})
	if err != nil {
		return nil, err
	}
	return toBusinessResponse(business), nil
}

func toBusinessResponse(b *entity.Business) *dto.BusinessResponse {
	if b == nil {
		return nil
	}
	return &dto.BusinessResponse{
		ID:              b.ID,
		Name:            b.Name,
		Email:           b.Email,
		Phone:           b.Phone,
		Address:         b.Address,
		DefaultCurrency: b.DefaultCurrency,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
