package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los fallos de infraestructura
// (store caído, query rechazada) NO usan estos sentinelas: se propagan envueltos
// con fmt.Errorf("...: %w", err) para que el caller distinga "no hay datos" de
// "el backend falló".
var (
	ErrUnauthenticated    = errors.New("usuario no autenticado")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
)
