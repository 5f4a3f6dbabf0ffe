package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")

	// ErrTransactionConflict: el store no pudo confirmar la transacción tras
	// agotar su presupuesto de reintentos; la operación queda FAILED y es
	// seguro reenviarla como una operación nueva.
	ErrTransactionConflict = errors.New("conflicto de transacción")

	// ErrAlreadyTerminal: intento de marcar terminal una operación que ya lo
	// es. Es un error de programación (violación de invariante), no un
	// resultado de negocio: debe propagarse, nunca tragarse.
	ErrAlreadyTerminal = errors.New("la operación ya tiene estado terminal")

	ErrElementInactive = errors.New("elemento de stock inactivo")
)
