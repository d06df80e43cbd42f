package entity

import "time"

// Customer representa un cliente que visita el negocio.
// Email, Phone y Notes son opcionales: en blanco se persisten como NULL y se
// exponen como cadena vacía. El borrado es hard delete (sin archivado).
type Customer struct {
	ID         string
	BusinessID string
	Name       string
	Email      string
	Phone      string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
