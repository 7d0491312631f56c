package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")

	// ErrInconsistent indica que quedaron reservas de stock aplicadas sin orden
	// persistida y la compensación no pudo revertirlas. Requiere reconciliación
	// manual; nunca debe tragarse en silencio.
	ErrInconsistent = errors.New("estado inconsistente: reservas sin orden persistida")
)
