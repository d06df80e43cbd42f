package entity

import "time"

// User representa una cuenta autenticable. La pertenencia a un negocio se
// modela aparte en BusinessUser; el User solo lleva identidad y credenciales.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
