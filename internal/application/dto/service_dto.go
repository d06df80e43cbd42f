package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateServiceRequest body para POST /api/services.
// Currency vacío hereda la moneda por defecto del negocio; Active nil
// equivale a true.
type CreateServiceRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Duration    int             `json:"duration" validate:"required,min=1"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency" validate:"omitempty,oneof=USD COP PAB"`
	Category    string          `json:"category"`
	Active      *bool           `json:"active"`
}

// UpdateServiceRequest body para PUT /api/services/:id. Campos nil no se
// tocan; business_id e id nunca forman parte del payload.
type UpdateServiceRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Duration    *int             `json:"duration" validate:"omitempty,min=1"`
	Price       *decimal.Decimal `json:"price"`
	Currency    *string          `json:"currency" validate:"omitempty,oneof=USD COP PAB"`
	Category    *string          `json:"category"`
	Active      *bool            `json:"active"`
}

// ServiceResponse servicio en respuestas.
type ServiceResponse struct {
	ID          string          `json:"id"`
	BusinessID  string          `json:"business_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Duration    int             `json:"duration"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Category    string          `json:"category,omitempty"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
