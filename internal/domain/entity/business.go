package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Monedas soportadas por la plataforma (deben coincidir con el CHECK de las tablas).
const (
	CurrencyUSD = "USD"
	CurrencyCOP = "COP"
	CurrencyPAB = "PAB"
)

// ValidCurrency indica si la moneda pertenece al catálogo soportado.
func ValidCurrency(c string) bool {
	return c == CurrencyUSD || c == CurrencyCOP || c == CurrencyPAB
}

// Business representa un negocio/salón de belleza (tenant de la plataforma).
type Business struct {
	ID              string
	Name            string
	Email           string
	Phone           string
	Address         string
	DefaultCurrency string // USD, COP, PAB
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Roles válidos para BusinessUser.
const (
	RoleOwner = "owner"
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// ValidRole indica si el rol pertenece al catálogo soportado.
func ValidRole(r string) bool {
	return r == RoleOwner || r == RoleAdmin || r == RoleStaff
}

// BusinessUser relaciona un usuario con un negocio (dueños y empleados).
// Cada usuario resuelve a lo sumo a una membresía activa: el sistema toma la
// primera coincidencia y no hay soporte multi-negocio por sesión.
type BusinessUser struct {
	ID             string
	BusinessID     string
	UserID         string
	Role           string          // owner, admin, staff
	CommissionRate decimal.Decimal // fracción >= 0 (ej. 0.40)
	IsActive       bool
	CreatedAt      time.Time
}
