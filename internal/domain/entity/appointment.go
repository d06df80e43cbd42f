package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Appointment, Payment y StaffService están declarados en el dominio pero aún
// no tienen repositorio ni superficie HTTP: son la siguiente etapa del
// producto (agenda y cobros) y se mantienen aquí para fijar el modelo.

// Estados de una cita.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Estados de pago de una cita.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusPaid      = "paid"
	PaymentStatusPartial   = "partial"
	PaymentStatusCancelled = "cancelled"
)

// Appointment es una cita agendada entre cliente, servicio y empleado.
type Appointment struct {
	ID               string
	BusinessID       string
	CustomerID       string
	ServiceID        string
	StaffID          string // vacío = sin asignar
	StartTime        time.Time
	EndTime          time.Time
	Status           string // ver constantes Appointment*
	PaymentStatus    string // ver constantes PaymentStatus*
	TotalAmount      decimal.Decimal
	CommissionRate   decimal.Decimal
	CommissionAmount decimal.Decimal
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Métodos de pago aceptados.
const (
	PaymentMethodCash     = "cash"
	PaymentMethodTransfer = "transfer"
	PaymentMethodQR       = "qr"
	PaymentMethodYappy    = "yappy"
)

// Payment es un pago realizado por una cita.
type Payment struct {
	ID            string
	BusinessID    string
	AppointmentID string
	Amount        decimal.Decimal
	Currency      string // USD, COP, PAB
	Method        string // ver constantes PaymentMethod*
	ReceiptURL    string
	CreatedAt     time.Time
}

// StaffService indica qué servicios puede realizar cada empleado.
type StaffService struct {
	ID         string
	BusinessID string
	StaffID    string
	ServiceID  string
	IsActive   bool
	CreatedAt  time.Time
}
