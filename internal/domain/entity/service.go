package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service representa un servicio que ofrece el negocio (corte, manicure, etc).
// Duration es en minutos (entero positivo; el mínimo 15 / paso 15 es una
// sugerencia del formulario, no un invariante del dominio). Currency es por
// servicio y por defecto hereda la moneda del negocio.
type Service struct {
	ID          string
	BusinessID  string
	Name        string
	Description string
	Duration    int // minutos
	Price       decimal.Decimal
	Currency    string // USD, COP, PAB
	Category    string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
