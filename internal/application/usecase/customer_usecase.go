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
)

// CustomerUseCase casos de uso CRUD para clientes, siempre acotados al
// negocio resuelto. Disciplina de errores estricta: un fallo del store se
// propaga, nunca se degrada a lista vacía ni a nil silencioso.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un nuevo cliente. Name es obligatorio (no vacío tras trim);
// email/phone/notes en blanco quedan como ausentes.
func (uc *CustomerUseCase) Create(ctx context.Context, businessID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Name:       name,
		Email:      strings.TrimSpace(in.Email),
		Phone:      strings.TrimSpace(in.Phone),
		Notes:      strings.TrimSpace(in.Notes),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente del negocio. ErrNotFound si no existe (o
// pertenece a otro negocio); los fallos de consulta se propagan aparte.
func (uc *CustomerUseCase) GetByID(ctx context.Context, businessID, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// List lista los clientes del negocio, más recientes primero.
func (uc *CustomerUseCase) List(ctx context.Context, businessID string) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update aplica un cambio parcial: solo los campos presentes en el request se
// modifican, el resto conserva su valor. ID y negocio son inmutables.
func (uc *CustomerUseCase) Update(ctx context.Context, businessID, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		customer.Name = name
	}
	if in.Email != nil {
		customer.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		customer.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Notes != nil {
		customer.Notes = strings.TrimSpace(*in.Notes)
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente (hard delete). ErrNotFound si no había fila.
func (uc *CustomerUseCase) Delete(ctx context.Context, businessID, id string) error {
	deleted, err := uc.repo.Delete(ctx, businessID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:         c.ID,
		BusinessID: c.BusinessID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Notes:      c.Notes,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
