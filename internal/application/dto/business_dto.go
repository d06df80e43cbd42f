package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBusinessRequest body para POST /api/businesses. Quien lo crea queda
// como membresía owner del negocio.
type CreateBusinessRequest struct {
	Name            string `json:"name" validate:"required,min=1,max=200"`
	Email           string `json:"email" validate:"omitempty,email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	DefaultCurrency string `json:"default_currency" validate:"omitempty,oneof=USD COP PAB"`
}

// BusinessResponse negocio en respuestas.
type BusinessResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Address         string    `json:"address,omitempty"`
	DefaultCurrency string    `json:"default_currency"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BusinessContextResponse resultado del resolver: el negocio del usuario
// autenticado y su rol/comisión dentro de él. Es el superset que las pantallas
// consumen; cada caller ignora lo que no necesita.
type BusinessContextResponse struct {
	BusinessID      string          `json:"business_id"`
	BusinessName    string          `json:"business_name"`
	Role            string          `json:"role"`
	CommissionRate  decimal.Decimal `json:"commission_rate"`
	DefaultCurrency string          `json:"default_currency"`
}
