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

// ServiceUseCase casos de uso CRUD para el catálogo de servicios del negocio.
// Entrada numérica inválida (duración <= 0, precio negativo) se rechaza con
// ErrInvalidInput; el formulario original la degradaba a 0 y eso producía
// servicios gratis de cero minutos en la base.
type ServiceUseCase struct {
	repo         repository.ServiceRepository
	businessRepo repository.BusinessRepository
}

// NewServiceUseCase construye el caso de uso. businessRepo se usa para
// heredar la moneda por defecto del negocio cuando el servicio no trae una.
func NewServiceUseCase(repo repository.ServiceRepository, businessRepo repository.BusinessRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, businessRepo: businessRepo}
}

// Create crea un nuevo servicio. Active omitido equivale a true; Currency
// omitida hereda la del negocio.
func (uc *ServiceUseCase) Create(ctx context.Context, businessID string, in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Duration <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	currency := in.Currency
	if currency == "" {
		business, err := uc.businessRepo.GetByID(ctx, businessID)
		if err != nil {
			return nil, err
		}
		if business == nil {
			return nil, domain.ErrNotFound
		}
		currency = business.DefaultCurrency
	}
	if !entity.ValidCurrency(currency) {
		return nil, domain.ErrInvalidInput
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	now := time.Now()
	service := &entity.Service{
		ID:          uuid.New().String(),
		BusinessID:  businessID,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Duration:    in.Duration,
		Price:       in.Price,
		Currency:    currency,
		Category:    strings.TrimSpace(in.Category),
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// GetByID obtiene un servicio del negocio. ErrNotFound si no existe.
func (uc *ServiceUseCase) GetByID(ctx context.Context, businessID, id string) (*dto.ServiceResponse, error) {
	service, err := uc.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	return toServiceResponse(service), nil
}

// List lista los servicios del negocio ordenados por nombre ascendente.
func (uc *ServiceUseCase) List(ctx context.Context, businessID string) ([]*dto.ServiceResponse, error) {
	list, err := uc.repo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toServiceResponse(s))
	}
	return out, nil
}

// Update aplica un cambio parcial con las mismas reglas de validación que
// Create. ID y negocio son inmutables.
func (uc *ServiceUseCase) Update(ctx context.Context, businessID, id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	service, err := uc.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		service.Name = name
	}
	if in.Description != nil {
		service.Description = strings.TrimSpace(*in.Description)
	}
	if in.Duration != nil {
		if *in.Duration <= 0 {
			return nil, domain.ErrInvalidInput
		}
		service.Duration = *in.Duration
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		service.Price = *in.Price
	}
	if in.Currency != nil {
		if !entity.ValidCurrency(*in.Currency) {
			return nil, domain.ErrInvalidInput
		}
		service.Currency = *in.Currency
	}
	if in.Category != nil {
		service.Category = strings.TrimSpace(*in.Category)
	}
	if in.Active != nil {
		service.Active = *in.Active
	}
	service.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// Delete elimina un servicio (hard delete). ErrNotFound si no había fila.
func (uc *ServiceUseCase) Delete(ctx context.Context, businessID, id string) error {
	deleted, err := uc.repo.Delete(ctx, businessID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	if s == nil {
		return nil
	}
	return &dto.ServiceResponse{
		ID:          s.ID,
		BusinessID:  s.BusinessID,
		Name:        s.Name,
		Description: s.Description,
		Duration:    s.Duration,
		Price:       s.Price,
		Currency:    s.Currency,
		Category:    s.Category,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
